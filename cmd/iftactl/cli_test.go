package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fleetflow/internal/service"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleLedger = `tenant: T1
fuel_purchases:
  - vehicle_id: TRK-101
    purchase_date: "2024-07-15"
    jurisdiction_code: GA
    gallons: "150.5"
    price_per_gallon: "3.899"
mileage:
  - vehicle_id: TRK-101
    travel_date: "2024-07-15"
    jurisdiction_code: GA
    miles: "285.7"
  - vehicle_id: TRK-101
    travel_date: "2024-07-16"
    jurisdiction_code: TN
    miles: "650"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	log = zap.NewNop()
	ratesFile, fleetMPG, bufferDays, fuelType = "", "6.5", 7, "diesel"
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd, out
}

func TestJurisdictionsCmd(t *testing.T) {
	cmd, out := testCmd()
	require.NoError(t, runJurisdictions(cmd, nil))
	assert.Contains(t, out.String(), "GA")
	assert.Contains(t, out.String(), "49 jurisdictions, rates effective 2024Q3")
}

func TestJurisdictionsCmdWithOverrides(t *testing.T) {
	cmd, out := testCmd()
	ratesFile = writeFile(t, "rates.yaml", "effective_quarter: 2024Q4\nrates:\n  GA: \"0.1840\"\n")
	require.NoError(t, runJurisdictions(cmd, nil))
	assert.Contains(t, out.String(), "0.1840")
	assert.Contains(t, out.String(), "rates effective 2024Q4")
}

func TestValidateCmd(t *testing.T) {
	cmd, out := testCmd()
	validateLedger = writeFile(t, "ledger.yaml", sampleLedger)
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "3 records valid")

	cmd, out = testCmd()
	validateLedger = writeFile(t, "bad.yaml", `fuel_purchases:
  - purchase_date: not-a-date
    jurisdiction_code: XX
    gallons: "-10"
    fuel_type: rocket_fuel
mileage:
  - vehicle_id: TRK-1
    travel_date: "2024-07-15"
    jurisdiction_code: GA
    miles: lots
`)
	err := runValidate(cmd, nil)
	require.Error(t, err)
	assert.Equal(t, "2 of 2 records invalid", err.Error())
	assert.Contains(t, out.String(), "fuel_purchases[0]: INVALID")
	assert.Contains(t, out.String(), `miles "lots" is not a number`)
}

func TestReturnCmd(t *testing.T) {
	cmd, out := testCmd()
	returnLedger = writeFile(t, "ledger.yaml", sampleLedger)
	returnTenant, returnYear, returnQuarter = "", 2024, 3

	require.NoError(t, runReturn(cmd, nil))

	var ret service.QuarterlyReturnResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &ret))
	assert.Equal(t, "T1", ret.TenantID)
	assert.Equal(t, "2024Q3", ret.Period)
	require.Len(t, ret.Jurisdictions, 2)
	assert.Equal(t, "GA", ret.Jurisdictions[0].Code)
	assert.Equal(t, "TN", ret.Jurisdictions[1].Code)
	assert.Equal(t, "100.000", ret.Jurisdictions[1].GallonsConsumed)
	assert.Equal(t, "27.00", ret.Jurisdictions[1].TaxOwed)
}

func TestReturnCmdRejectsBadQuarter(t *testing.T) {
	cmd, _ := testCmd()
	returnLedger = writeFile(t, "ledger.yaml", sampleLedger)
	returnTenant, returnYear, returnQuarter = "T1", 2024, 9

	err := runReturn(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid period")
}

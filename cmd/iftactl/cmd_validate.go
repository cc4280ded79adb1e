package main

import (
	"fmt"

	"fleetflow/internal/ifta"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateLedger string

// validateCmd checks every record of a ledger
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every record of a YAML ledger",
	Long: `Validate every fuel purchase and mileage record of a YAML ledger and
print each violated rule. Exits non-zero when any record is invalid.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateLedger, "ledger", "", "path to the YAML ledger")
	_ = validateCmd.MarkFlagRequired("ledger")
}

func runValidate(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	l, err := readLedger(validateLedger)
	if err != nil {
		return err
	}

	validator := ifta.NewValidator(registry, nil)
	out := cmd.OutOrStdout()
	invalid := 0

	for i, f := range l.FuelPurchases {
		in, parseErrs := f.input()
		in.Normalize(fuelType)
		errs := append(parseErrs, validator.ValidateFuelPurchase(in).Errors...)
		if len(errs) > 0 {
			invalid++
			fmt.Fprintf(out, "fuel_purchases[%d]: INVALID\n", i)
			for _, e := range errs {
				fmt.Fprintf(out, "  - %s\n", e)
			}
		}
	}
	for i, m := range l.Mileage {
		in, parseErrs := m.input()
		in.Normalize()
		errs := append(parseErrs, validator.ValidateMileage(in).Errors...)
		if len(errs) > 0 {
			invalid++
			fmt.Fprintf(out, "mileage[%d]: INVALID\n", i)
			for _, e := range errs {
				fmt.Fprintf(out, "  - %s\n", e)
			}
		}
	}

	total := len(l.FuelPurchases) + len(l.Mileage)
	log.Debug("ledger validated", zap.String("ledger", validateLedger), zap.Int("records", total), zap.Int("invalid", invalid))
	if invalid > 0 {
		return fmt.Errorf("%d of %d records invalid", invalid, total)
	}
	fmt.Fprintf(out, "%d records valid\n", total)
	return nil
}

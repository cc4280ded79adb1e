// Command iftactl inspects the jurisdiction registry and computes IFTA
// returns from YAML ledgers without a database.
package main

import (
	"fmt"
	"os"

	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	ratesFile  string
	fleetMPG   string
	bufferDays int
	fuelType   string
	logLevel   string

	log *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iftactl",
	Short: "IFTA fuel-tax operator tool",
	Long: `iftactl works on IFTA data offline.

Available commands:
  jurisdictions - Print the jurisdiction registry and its tax rates
  validate      - Validate every record of a YAML ledger
  return        - Compute a quarterly return from a YAML ledger`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if log != nil {
			return nil
		}
		l, err := logger.New("development", logLevel)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ratesFile, "rates", os.Getenv("IFTA_RATES_FILE"), "YAML rate overrides")
	rootCmd.PersistentFlags().StringVar(&fleetMPG, "mpg", envOr("IFTA_BASE_FLEET_MPG", "6.5"), "fleet-average miles per gallon")
	rootCmd.PersistentFlags().IntVar(&bufferDays, "buffer-days", 7, "reminder lead time before the filing deadline")
	rootCmd.PersistentFlags().StringVar(&fuelType, "fuel-type", envOr("IFTA_DEFAULT_FUEL_TYPE", "diesel"), "fuel type for purchases that omit it")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug|info|warn|error")

	rootCmd.AddCommand(jurisdictionsCmd, validateCmd, returnCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadRegistry() (*jurisdiction.Registry, error) {
	r, err := jurisdiction.Load(ratesFile)
	if err != nil {
		return nil, fmt.Errorf("load rates: %w", err)
	}
	return r, nil
}

func parseMPG() (decimal.Decimal, error) {
	mpg, err := decimal.NewFromString(fleetMPG)
	if err != nil || !mpg.IsPositive() {
		return decimal.Zero, fmt.Errorf("--mpg must be a number greater than 0, got %q", fleetMPG)
	}
	return mpg, nil
}

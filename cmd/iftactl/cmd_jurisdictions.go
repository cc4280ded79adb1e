package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// jurisdictionsCmd prints the registry
var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "Print the IFTA jurisdiction registry",
	Args:  cobra.NoArgs,
	RunE:  runJurisdictions,
}

func runJurisdictions(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CODE\tNAME\tRATE/GAL\tE-FILING\n")
	for _, j := range registry.All() {
		efile := "no"
		if j.HasElectronicFilingAPI {
			efile = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.Code, j.Name, j.TaxRatePerGallon.StringFixed(4), efile)
	}
	fmt.Fprintf(w, "\n%d jurisdictions, rates effective %s\n", registry.Len(), registry.EffectiveQuarter())
	return w.Flush()
}

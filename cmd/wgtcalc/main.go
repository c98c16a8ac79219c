// Command wgtcalc computes wind-adjusted golf shot distances. It can serve
// the calculator as a JSON API or run one-shot calculations and diagram
// renders from the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "wgtcalc",
	Short:         "WGT golf shot wind-adjustment calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

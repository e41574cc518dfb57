package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eulera",
	Short: "A financial dashboard backend with charting, forecasting and live quotes",
	Long: `Eulera pulls live and historical market data for a fixed set of public
companies, computes technical indicators, composes multi-panel chart
specifications, tracks an external price-forecasting model, and keeps
everything fresh through periodic refreshes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

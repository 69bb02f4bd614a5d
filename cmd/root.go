package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "serviceboard",
	Short:         "serviceboard: services and bookings API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(indexesCmd)
	rootCmd.AddCommand(routeListCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

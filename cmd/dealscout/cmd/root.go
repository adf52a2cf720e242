// Package cmd implements the CLI commands for the dealscout server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dealscout",
	Short: "Vehicle listing scoring backend",
	Long: "A demo backend that ingests vehicle listings, normalizes and stores them,\n" +
		"computes a heuristic purchase-worthiness score and maximum bid per listing,\n" +
		"and exposes the results over HTTP for a local front end.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package cmd

import (
	"github.com/spf13/cobra"
)

func listingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listings",
		Short: "List stored listings with their latest scores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			listings, err := newClient().Listings(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(listings)
			}
			return printListingsTable(listings)
		},
	}
}

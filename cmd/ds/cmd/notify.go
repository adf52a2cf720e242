package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/dealscout/dealscout/internal/api/client"
)

func notifyCmd() *cobra.Command {
	var (
		channel string
		message string
	)

	cmd := &cobra.Command{
		Use:   "notify <vin> [vin...]",
		Short: "Record a notification for one or more VINs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]apiclient.NotifyItem, 0, len(args))
			for _, vin := range args {
				items = append(items, apiclient.NotifyItem{
					VIN:     vin,
					Channel: channel,
					Message: message,
				})
			}

			results, err := newClient().Notify(cmd.Context(), items)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(results)
			}
			for _, r := range results {
				fmt.Printf("%s: notified via %s\n", r.VIN, r.Channel)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "notification channel (default email)")
	cmd.Flags().StringVar(&message, "message", "", "notification message")

	return cmd
}

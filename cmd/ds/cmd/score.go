package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/dealscout/dealscout/pkg/types"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [file]",
		Short: "Score a JSON batch of listing facts from a file or stdin",
		Long: "Score reads a JSON array of score requests (vin, price, miles,\n" +
			"dom) from the given file (or stdin when no file is given),\n" +
			"submits it to the API, and prints the per-item results.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reqs []domain.ScoreRequest
			if err := readJSONArg(args, &reqs); err != nil {
				return err
			}

			responses, err := newClient().Score(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(responses)
			}
			return printScoresTable(responses)
		},
	}
}

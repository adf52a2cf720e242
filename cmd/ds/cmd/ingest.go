package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/dealscout/dealscout/pkg/types"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [file]",
		Short: "Ingest a JSON batch of listings from a file or stdin",
		Long: "Ingest reads a JSON array of listings from the given file\n" +
			"(or stdin when no file is given) and submits it to the API.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var listings []domain.Listing
			if err := readJSONArg(args, &listings); err != nil {
				return err
			}

			stored, err := newClient().Ingest(cmd.Context(), listings)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(stored)
			}
			fmt.Printf("Ingested %d listing(s).\n", len(stored))
			return nil
		},
	}
}

// readJSONArg decodes a JSON document from the first positional argument,
// or from stdin when none is given.
func readJSONArg(args []string, dst any) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decoding input JSON: %w", err)
	}
	return nil
}

// dealscout is the demo auto-buyer backend: it ingests vehicle listings,
// scores them with a purchase heuristic, and serves the results over HTTP.
package main

import (
	"os"

	"github.com/dealscout/dealscout/cmd/dealscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ds is the command-line client for the dealscout API.
package main

import "github.com/dealscout/dealscout/cmd/ds/cmd"

func main() {
	cmd.Execute()
}

// Command lsystem expands and traces Lindenmayer systems.
package main

import (
	"os"

	"github.com/mainakk/lsystem/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

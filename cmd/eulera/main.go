package main

import (
	"os"

	"github.com/s0v1x/EULERA/cmd/eulera/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/joshtsang/fopo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/blaezi/blaezi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

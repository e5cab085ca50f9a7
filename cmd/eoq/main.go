package main

import (
	"os"

	"github.com/iwvelando/eoq-calculator/cmd/eoq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

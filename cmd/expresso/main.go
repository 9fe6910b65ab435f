package main

import (
	"os"

	"github.com/expresso-dev/expresso/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

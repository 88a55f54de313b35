package main

import (
	"os"

	"github.com/MikeBiancalana/dtpick/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

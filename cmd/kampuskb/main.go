package main

import (
	"os"

	"github.com/talenta-labs/kampuskb/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

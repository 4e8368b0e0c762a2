package main

import (
	"os"

	"github.com/msto63/strkw/cmd/strkw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

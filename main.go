package main

import (
	"os"

	"github.com/abhisek/skilldrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/CronoXGM/Calculator-medie-UTCN/cmd/medie/commands"
)

// main is the entry point for the medie CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

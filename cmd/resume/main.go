package main

import (
	"os"

	"resume-builder/cmd/resume/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/limbo/rexfit/pkg/cleanup"
)

func main() {
	err := rootCmd.Execute()
	cleanup.CleanUp()
	if err != nil {
		os.Exit(1)
	}
}

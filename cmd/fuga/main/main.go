package main

import (
	"os"

	"github.com/arthur-debert/fuga/cmd/fuga"
)

func main() {
	rootCmd := fuga.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fuga.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

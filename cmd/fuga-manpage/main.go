package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fuga/cmd/fuga"
)

// Writes one page per command into the directory given as the only
// argument, or the root page to stdout without one.
func main() {
	rootCmd := fuga.NewRootCmd()
	header := fuga.ManHeader()

	var err error
	if len(os.Args) > 1 {
		if err = os.MkdirAll(os.Args[1], 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, os.Args[1])
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

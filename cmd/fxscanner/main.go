// Package main provides the CLI entrypoint for fxscanner.
//
// fxscanner reads an addon description (.fxaddon) and writes the C header
// that lets other modules call the addon's functions through the module
// registry:
//
//	fxscanner INPUT OUTPUT
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"fcitx-scanner/cmd/fxscanner/commands"
	"fcitx-scanner/internal/logger"
)

func main() {
	cmd, err := commands.RootCmd.ExecuteC()
	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		os.Exit(commands.ExitCode(cmd, err))
	}
}

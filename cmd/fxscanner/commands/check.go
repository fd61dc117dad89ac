package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"fcitx-scanner/internal/scanner"
)

// errOutOfDate is returned by check when the header differs.
var errOutOfDate = errors.New("header is out of date")

// CheckCmd verifies that a generated header is current.
var CheckCmd = &cobra.Command{
	Use:   "check INPUT OUTPUT",
	Short: "Check if a generated header is up to date",
	Long: `Regenerate the header in memory and compare it with OUTPUT.

Exit codes:
  0 - OUTPUT is up to date
  1 - OUTPUT is missing or differs
  2 - Error during check`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	ok, err := scanner.Check(input, output, options())
	if err != nil {
		return errors.Wrapf(err, "failed to check %s", output)
	}

	if !ok {
		pterm.Warning.WithWriter(cmd.OutOrStdout()).Printfln("%s is out of date", output)
		return errors.WithHintf(errOutOfDate, "run 'fxscanner %s %s' to update it", input, output)
	}

	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("%s is up to date", output)

	return nil
}

// ExitCode maps the command that ran and its error to the process exit
// status. check distinguishes a stale header (1) from a failed run (2).
func ExitCode(cmd *cobra.Command, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errOutOfDate):
		return 1
	case cmd == CheckCmd:
		return 2
	default:
		return 1
	}
}

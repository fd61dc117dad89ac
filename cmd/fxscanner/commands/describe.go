package commands

import (
	"github.com/spf13/cobra"

	"fcitx-scanner/internal/scanner"
)

var describeFormat string

// DescribeCmd prints the resolved descriptors of an addon description.
var DescribeCmd = &cobra.Command{
	Use:   "describe INPUT",
	Short: "Print the resolved addon descriptors",
	Long: `Resolve INPUT and print the addon, macro and function descriptors,
including names that resolve to nothing and any diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanner.Describe(args[0], describeFormat, cmd.OutOrStdout())
	},
}

func init() {
	DescribeCmd.Flags().StringVarP(&describeFormat, "format", "f", scanner.FormatYAML, "Output format: yaml or toml")
}

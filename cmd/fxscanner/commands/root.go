package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fcitx-scanner/internal/config"
	"fcitx-scanner/internal/logger"
	"fcitx-scanner/internal/scanner"
)

var (
	verbosity  int
	logJSON    bool
	configPath string

	// settings is filled in by the persistent pre-run of every command.
	settings *config.Config
)

// RootCmd generates a module header from an addon description.
var RootCmd = &cobra.Command{
	Use:   "fxscanner INPUT OUTPUT",
	Short: "Generate an fcitx module header from an addon description",
	Long: `Generate the C header that exposes an addon's functions to other modules.

INPUT is a sectioned .fxaddon file with a [FcitxAddon] group naming the
addon, its symbol prefix and the declared macros, includes and functions.
OUTPUT is the header to write. It is only written when generation succeeds.

The words check and describe select subcommands. An input file with one of
those names must be given with a path, as in ./check. Use -h or --help for
help; "help" itself is treated as an input path.

Examples:
  fxscanner clipboard.fxaddon fcitx-clipboard.h
  fxscanner -v spell.fxaddon spell.h          # report skipped items
  fxscanner check spell.fxaddon spell.h       # verify spell.h is current
  fxscanner describe spell.fxaddon            # dump resolved descriptors`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: setup,
	RunE:              runGenerate,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (toml, yaml or json)")

	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(DescribeCmd)

	// Replaces cobra's "help" subcommand so that word reaches RunE as an
	// input path.
	RootCmd.SetHelpCommand(&cobra.Command{
		Use:    "__help",
		Hidden: true,
		Run:    func(*cobra.Command, []string) {},
	})
}

// setup loads configuration and initializes logging. Flags set on the
// command line override the config file and environment.
func setup(cmd *cobra.Command, _ []string) error {
	// Argument validation has passed by now; later failures are not usage
	// problems.
	cmd.SilenceUsage = true

	v, err := config.New(configPath)
	if err != nil {
		return err
	}

	bindFlags(v, cmd)

	settings, err = config.LoadWithViper(v)
	if err != nil {
		return err
	}

	return logger.Initialize(settings.Log.JSON, settings.Log.Verbosity)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	flags := cmd.Flags()

	if f := flags.Lookup("verbose"); f != nil && f.Changed {
		v.Set("log.verbosity", verbosity)
	}

	if f := flags.Lookup("log-json"); f != nil && f.Changed {
		v.Set("log.json", logJSON)
	}
}

func options() scanner.Options {
	opts := scanner.DefaultOptions()
	opts.Atomic = settings.Output.Atomic
	opts.DumpPlan = logger.ShouldLogTrace(settings.Log.Verbosity)

	return opts
}

func runGenerate(_ *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if err := scanner.Run(input, output, options()); err != nil {
		return errors.Wrapf(err, "failed to generate %s", output)
	}

	return nil
}

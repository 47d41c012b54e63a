package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jiwonz/roblox-install/internal/config"
	"github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/logging"
	"github.com/jiwonz/roblox-install/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	outputFlag  string
	noColorFlag bool
	verboseFlag bool
)

var (
	out output.Outputer
	cfg *config.Instance
)

var rootCmd = &cobra.Command{
	Use:   constants.CommandName,
	Short: "Locate Roblox Studio and Roblox Player installations",
	Long: constants.CommandName + ` resolves the install paths of Roblox Studio and the Roblox Player
on this machine. Set ` + constants.StudioPathEnvVarName + ` to resolve from an explicit
install root instead of the platform's own discovery.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupMediator()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudio(out)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format, one of: plain, json")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	// The value is read straight from os.Args before cobra runs, so that
	// logging is verbose during flag parsing too. The flag is registered
	// anyway so it shows up in help and passes validation.
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Show verbose log output on stderr")
}

// setupMediator initializes the package globals every command prints through.
func setupMediator() error {
	var err error
	cfg, err = config.New()
	if err != nil {
		// Preferences are a convenience; locating has to work without them.
		logging.Error("Could not load config: %v", err)
		cfg = nil
	}

	format := outputFlag
	if format == "" && cfg != nil {
		format = cfg.GetString(constants.OutputFormatConfigKey)
	}

	colored := !noColorFlag && os.Getenv("NO_COLOR") == ""
	out, err = output.New(format, &output.Config{
		OutWriter: os.Stdout,
		ErrWriter: os.Stderr,
		Colored:   colored,
	})
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return err
}

func reportError(err error) {
	logging.Error("Command failed: %s", errs.JoinMessage(err))

	message := errs.JoinMessage(err)
	var userFacing errs.UserFacingError
	if errors.As(err, &userFacing) {
		message = userFacing.UserError()
	}

	if out == nil {
		fmt.Fprintln(os.Stderr, message)
		return
	}

	out.Error(message)
	var tipper interface{ ErrorTips() []string }
	if errors.As(err, &tipper) {
		for _, tip := range tipper.ErrorTips() {
			out.Notice(" - " + tip)
		}
	}
}

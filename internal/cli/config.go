package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thoas/go-funk"

	"github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/output"
)

func init() {
	configCmd.AddCommand(configSetFormatCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI preferences",
}

var configSetFormatCmd = &cobra.Command{
	Use:   "set-format <format>",
	Short: "Set the default output format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetFormat(out, args[0])
	},
}

func runSetFormat(out output.Outputer, format string) error {
	if !funk.Contains(output.Formats(), format) {
		return errs.WrapExitCode(errs.NewUserFacing(
			fmt.Sprintf("Unknown format %q", format),
			errs.SetInput(),
			errs.SetTips("Valid formats: "+strings.Join(output.Formats(), ", ")),
		), 2)
	}

	if cfg == nil {
		return errs.New("preferences could not be loaded")
	}
	if err := cfg.Set(constants.OutputFormatConfigKey, format); err != nil {
		return errs.Wrap(err, "could not persist the output format")
	}

	out.Notice("Default output format set to " + format)
	return nil
}

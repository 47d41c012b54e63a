package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"github.com/thoas/go-funk"

	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/output"
	"github.com/jiwonz/roblox-install/pkg/robloxinstall"
)

var openComponents = []string{"root", "content", "plugins", "builtin-plugins", "application"}

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <component>",
	Short: "Open a Studio install directory in the system file browser",
	Long: `Locate Roblox Studio and open one of its directories in the system file
browser. Components: ` + strings.Join(openComponents, ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpen(out, args[0])
	},
}

func runOpen(out output.Outputer, component string) error {
	if !funk.Contains(openComponents, component) {
		return errs.WrapExitCode(errs.NewUserFacing(
			fmt.Sprintf("Unknown component %q", component),
			errs.SetInput(),
			errs.SetTips("Valid components: "+strings.Join(openComponents, ", ")),
		), 2)
	}

	install, err := robloxinstall.LocateStudio()
	if err != nil {
		return err
	}

	dir := componentDir(install, component)
	if err := open.Run(dir); err != nil {
		return errs.Wrap(err, "could not open %s", dir)
	}

	out.Notice("Opened " + dir)
	return nil
}

func componentDir(install *robloxinstall.StudioInstallation, component string) string {
	switch component {
	case "content":
		return install.Content
	case "plugins":
		return install.Plugins
	case "builtin-plugins":
		return install.BuiltInPlugins
	case "application":
		// The executable itself is a file; show the directory holding it.
		return filepath.Dir(install.Application)
	default:
		return install.Root
	}
}

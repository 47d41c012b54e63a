package cli

import (
	"github.com/spf13/cobra"

	"github.com/jiwonz/roblox-install/internal/output"
	"github.com/jiwonz/roblox-install/pkg/robloxinstall"
)

func init() {
	rootCmd.AddCommand(studioCmd)
}

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Print the install paths of Roblox Studio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudio(out)
	},
}

type studioReport struct {
	Root           string `json:"root" serialized:"root"`
	Application    string `json:"application" serialized:"application"`
	Content        string `json:"content" serialized:"content"`
	BuiltInPlugins string `json:"builtInPlugins" serialized:"builtin_plugins"`
	Plugins        string `json:"plugins" serialized:"plugins"`
}

func runStudio(out output.Outputer) error {
	install, err := robloxinstall.LocateStudio()
	if err != nil {
		return err
	}

	out.Print(&studioReport{
		Root:           install.Root,
		Application:    install.Application,
		Content:        install.Content,
		BuiltInPlugins: install.BuiltInPlugins,
		Plugins:        install.Plugins,
	})
	return nil
}

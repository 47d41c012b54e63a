package cli

import (
	"github.com/spf13/cobra"

	"github.com/jiwonz/roblox-install/internal/output"
	"github.com/jiwonz/roblox-install/pkg/robloxinstall"
)

func init() {
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Print the install paths of the Roblox Player",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlayer(out)
	},
}

type playerReport struct {
	Root        string `json:"root" serialized:"root"`
	Application string `json:"application" serialized:"application"`
	Content     string `json:"content" serialized:"content"`
}

func runPlayer(out output.Outputer) error {
	install, err := robloxinstall.LocatePlayer()
	if err != nil {
		return err
	}

	out.Print(&playerReport{
		Root:        install.Root,
		Application: install.Application,
		Content:     install.Content,
	})
	return nil
}

package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

type versionReport struct {
	Version string `json:"version" serialized:"version"`
	Commit  string `json:"commit" serialized:"commit"`
	Date    string `json:"date" serialized:"date"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out.Print(&versionReport{
			Version: buildVersion,
			Commit:  buildCommit,
			Date:    buildDate,
		})
		return nil
	},
}

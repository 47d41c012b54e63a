package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/fileutils"
	"github.com/jiwonz/roblox-install/internal/output"
	"github.com/jiwonz/roblox-install/pkg/robloxinstall"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which resolved install paths exist on disk",
	Long: `Locate Roblox Studio (and the Roblox Player on Windows) and report which of
the resolved paths exist on disk. Missing paths are reported, not treated as
failures; the command only fails when locating does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(out)
	},
}

type doctorEntry struct {
	Component string `json:"component"`
	Path      string `json:"path"`
	Exists    bool   `json:"exists"`
}

type doctorReport struct {
	Studio []doctorEntry `json:"studio"`
	Player []doctorEntry `json:"player,omitempty"`
}

func (r *doctorReport) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return r
	}

	lines := []string{"Roblox Studio:"}
	lines = append(lines, plainEntries(r.Studio)...)
	if r.Player != nil {
		lines = append(lines, "Roblox Player:")
		lines = append(lines, plainEntries(r.Player)...)
	}
	return strings.Join(lines, "\n")
}

func plainEntries(entries []doctorEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		status := "ok"
		if !entry.Exists {
			status = "missing"
		}
		lines = append(lines, fmt.Sprintf("  %-8s %-16s %s", status, entry.Component, entry.Path))
	}
	return lines
}

func runDoctor(out output.Outputer) error {
	install, err := robloxinstall.LocateStudio()
	if err != nil {
		return errs.Wrap(err, "could not locate Roblox Studio")
	}

	report := &doctorReport{
		Studio: []doctorEntry{
			checkPath("root", install.Root),
			checkPath("application", install.Application),
			checkPath("content", install.Content),
			checkPath("builtin-plugins", install.BuiltInPlugins),
			checkPath("plugins", install.Plugins),
		},
	}

	// The Player only keeps an install record on Windows, elsewhere there is
	// nothing to check.
	if robloxinstall.HostPlatform() == robloxinstall.PlatformWindows {
		player, err := robloxinstall.LocatePlayer()
		if err != nil {
			out.Notice("Roblox Player could not be located: " + errs.JoinMessage(err))
		} else {
			report.Player = []doctorEntry{
				checkPath("root", player.Root),
				checkPath("application", player.Application),
				checkPath("content", player.Content),
			}
		}
	}

	out.Print(report)
	return nil
}

func checkPath(component, path string) doctorEntry {
	return doctorEntry{
		Component: component,
		Path:      path,
		Exists:    fileutils.TargetExists(path),
	}
}

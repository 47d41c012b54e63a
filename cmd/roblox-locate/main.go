package main

import (
	"os"

	"github.com/jiwonz/roblox-install/internal/cli"
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/logging"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var exitCode int
	defer func() {
		logging.Close()
		os.Exit(exitCode)
	}()

	// Allow running in verbose mode, outputting every log statement to stderr
	logging.CurrentHandler().SetVerbose(os.Getenv("VERBOSE") != "" || argsHaveVerbose(os.Args[1:]))

	if err := cli.Execute(version, commit, date); err != nil {
		exitCode = errs.UnwrapExitCode(err)
	}
}

func argsHaveVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--verbose" {
			return true
		}
	}
	return false
}

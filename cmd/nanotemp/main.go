// nanotemp is a command line mktemp which can also run a child
// command with a self-cleaning temporary directory.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gameroman/nanotemp"
	"github.com/gameroman/nanotemp/lib/atexit"
	"github.com/gameroman/nanotemp/lib/exitcode"
)

var (
	prefix  string
	suffix  string
	baseDir string
	verbose bool
)

var root = &cobra.Command{
	Use:           "nanotemp",
	Short:         "Create temporary files and directories with automatic cleanup.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(command *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// addAffixFlags installs the name affix flags shared by every
// subcommand.
func addAffixFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&prefix, "prefix", "p", "", "Basename prefix for the generated name.")
	flags.StringVarP(&suffix, "suffix", "s", "", "Basename suffix for the generated name, eg \".txt\".")
	flags.StringVarP(&baseDir, "dir", "d", "", "Parent directory for the generated name (default the system temp dir).")
}

func init() {
	addAffixFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func affixes() *nanotemp.Options {
	return &nanotemp.Options{
		Prefix: prefix,
		Suffix: suffix,
		Dir:    baseDir,
	}
}

// childCode is the exit status of the command run by "nanotemp run",
// reported once cleanup has had its say.
var childCode int

func main() {
	code := exitcode.Success
	if err := root.Execute(); err != nil {
		logrus.Errorf("%v", err)
		code = exitcode.CreateError
	}
	if err := atexit.Run(); err != nil {
		logrus.Errorf("%v", err)
		code = exitcode.CleanupError
	}
	if code == exitcode.Success {
		code = childCode
	}
	os.Exit(code)
}

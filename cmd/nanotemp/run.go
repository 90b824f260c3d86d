package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gameroman/nanotemp"
	"github.com/gameroman/nanotemp/lib/file"
)

var keepDir bool

func init() {
	runCommand.Flags().BoolVarP(&keepDir, "keep", "k", false, "Keep the temporary directory instead of removing it at exit.")
	root.AddCommand(runCommand)
}

var runCommand = &cobra.Command{
	Use:   "run command [args...]",
	Short: "Run a command with a fresh temporary directory as its TMPDIR.",
	Long: `Run a command with a fresh temporary directory as its TMPDIR.

The directory is tracked and removed once the command finishes, on
SIGINT/SIGTERM included, unless --keep leaves it behind for
inspection. A --dir parent which does not exist yet is created first.
nanotemp exits with the command's exit status unless the cleanup
itself fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		dir, err := makeRunDir()
		if err != nil {
			return err
		}
		logrus.Debugf("created %s", dir)

		child := exec.Command(args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = append(os.Environ(), "TMPDIR="+dir)

		err = child.Run()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			childCode = exitErr.ExitCode()
			return nil
		}
		return err
	},
}

// makeRunDir creates the child's TMPDIR, creating the --dir parent
// tree if needed. With --keep the directory is dropped from the
// registry straight away so the exit hook leaves it alone.
func makeRunDir() (string, error) {
	if baseDir != "" {
		if err := file.MkdirAll(baseDir, file.TempDirMode); err != nil {
			return "", err
		}
	}
	dir, err := nanotemp.NewDir(affixes())
	if err != nil {
		return "", err
	}
	if keepDir {
		nanotemp.Forget(dir)
		logrus.Infof("keeping %s", dir)
	}
	return dir, nil
}

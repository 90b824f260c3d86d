package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gameroman/nanotemp"
)

func init() {
	root.AddCommand(dirCommand)
}

var dirCommand = &cobra.Command{
	Use:   "dir",
	Short: "Create a temporary directory and print its path.",
	Long: `Create a temporary directory exclusively, mode 0700, and print its
path.

The directory is yours to delete: this command exits straight away, so
tracking it for exit cleanup would only take it away again.`,
	Args: cobra.NoArgs,
	RunE: func(command *cobra.Command, args []string) error {
		nanotemp.SetTracking(false)
		path, err := nanotemp.NewDir(affixes())
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

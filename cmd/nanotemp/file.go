package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gameroman/nanotemp"
)

func init() {
	root.AddCommand(fileCommand)
}

var fileCommand = &cobra.Command{
	Use:   "file",
	Short: "Create a temporary file and print its path.",
	Long: `Create a temporary file exclusively, mode 0600, and print its path.

The file is yours to delete: this command exits straight away, so
tracking it for exit cleanup would only take it away again.`,
	Args: cobra.NoArgs,
	RunE: func(command *cobra.Command, args []string) error {
		nanotemp.SetTracking(false)
		f, err := nanotemp.NewFile(affixes())
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Println(f.Name())
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gameroman/nanotemp"
)

func init() {
	root.AddCommand(nameCommand)
}

var nameCommand = &cobra.Command{
	Use:   "name",
	Short: "Print a fresh temporary name without creating anything.",
	Long: `Print a fresh temporary name without creating anything.

The printed path is not reserved. Anything may create it between this
command and your use of it - prefer "nanotemp file" or "nanotemp dir"
when that matters.`,
	Args: cobra.NoArgs,
	RunE: func(command *cobra.Command, args []string) error {
		path, err := nanotemp.NewName(affixes())
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

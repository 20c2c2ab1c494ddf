package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the live database file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDatabasePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

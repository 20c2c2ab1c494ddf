package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration and an empty logbook database",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and default config.yaml already exist after
		// PersistentPreRunE; opening the store creates the schema.
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println("initialized logbook at", st.Path())
		return nil
	},
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var flagClearYes bool

func init() {
	clearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "skip the confirmation requirement")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record in the logbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagClearYes {
			return errors.New("refusing to clear without --yes")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ClearData(); err != nil {
			return err
		}
		fmt.Println("logbook cleared")
		return nil
	},
}

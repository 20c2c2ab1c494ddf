package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write a full backup of the logbook as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		b, err := st.ExportToFile(args[0])
		if err != nil {
			return err
		}

		total := len(b.Data.Ships) + len(b.Data.Locations) + len(b.Data.JournalEntries) +
			len(b.Data.Transactions) + len(b.Data.CargoRuns) + len(b.Data.Missions) +
			len(b.Data.Screenshots) + len(b.Data.Sessions)
		fmt.Printf("exported %d records to %s\n", total, args[0])
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the logbook contents with a backup file",
	Long: `Replace the logbook contents with a backup file.

The backup is validated before anything is touched, and the wipe and
reload run in a single transaction: a failed import leaves the current
data exactly as it was.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportFromFile(args[0]); err != nil {
			return err
		}
		fmt.Println("imported", args[0])
		return nil
	},
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagStartingBalance int64
	flagEndingBalance   int64
)

func init() {
	sessionStartCmd.Flags().Int64Var(&flagStartingBalance, "balance", -1, "starting balance (omit to skip)")
	sessionEndCmd.Flags().Int64Var(&flagEndingBalance, "balance", -1, "ending balance (omit to skip)")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionEndCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Track play sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a session, ending any session still open",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var balance *int64
		if cmd.Flags().Changed("balance") {
			balance = &flagStartingBalance
		}

		sess, err := st.StartSession(balance)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(sess)
		}
		fmt.Println("session started:", sess.ID)
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		active, err := st.ActiveSession()
		if err != nil {
			return err
		}
		if active == nil {
			return errors.New("no active session")
		}

		var balance *int64
		if cmd.Flags().Changed("balance") {
			balance = &flagEndingBalance
		}

		sess, err := st.EndSession(active.ID, balance)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(sess)
		}
		fmt.Printf("session ended after %d minutes\n", *sess.DurationMinutes)
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		active, err := st.ActiveSession()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(active)
		}
		if active == nil {
			fmt.Println("no active session")
			return nil
		}
		started := time.UnixMilli(active.StartedAt).Local()
		fmt.Printf("active session %s, started %s\n", active.ID, started.Format(time.RFC1123))
		return nil
	},
}

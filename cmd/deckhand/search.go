package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search ships, locations, journal entries, cargo runs, and missions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ships, err := st.SearchShips(query)
		if err != nil {
			return err
		}
		locations, err := st.SearchLocations(query)
		if err != nil {
			return err
		}
		entries, err := st.SearchJournalEntries(query)
		if err != nil {
			return err
		}
		runs, err := st.SearchCargoRuns(query)
		if err != nil {
			return err
		}
		missions, err := st.SearchMissions(query)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"ships":          ships,
				"locations":      locations,
				"journalEntries": entries,
				"cargoRuns":      runs,
				"missions":       missions,
			})
		}

		for _, sh := range ships {
			fmt.Printf("ship      %s  %s %s\n", sh.ID, sh.Manufacturer, sh.Model)
		}
		for _, loc := range locations {
			fmt.Printf("location  %s  %s\n", loc.ID, loc.Name)
		}
		for _, e := range entries {
			title := ""
			if e.Title != nil {
				title = *e.Title
			}
			fmt.Printf("journal   %s  %s\n", e.ID, title)
		}
		for _, run := range runs {
			fmt.Printf("cargo     %s  %s x%d\n", run.ID, run.Commodity, run.Quantity)
		}
		for _, m := range missions {
			fmt.Printf("mission   %s  %s\n", m.ID, m.Title)
		}

		total := len(ships) + len(locations) + len(entries) + len(runs) + len(missions)
		if total == 0 {
			fmt.Println("no matches")
		}
		return nil
	},
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the running balance, total and per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		total, err := st.Balance()
		if err != nil {
			return err
		}
		byCategory, err := st.BalanceByCategory()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"total":      total,
				"byCategory": byCategory,
			})
		}

		fmt.Printf("total: %d\n", total)
		categories := make([]string, 0, len(byCategory))
		for category := range byCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Printf("  %-10s %d\n", category, byCategory[category])
		}
		return nil
	},
}

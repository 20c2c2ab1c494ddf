package main

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// printJSON writes v as indented JSON to stdout, the --json output mode
// shared by subcommands.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

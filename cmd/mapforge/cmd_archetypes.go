package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mapforge/internal/schema"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List the location archetype catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range schema.Vocab().Archetypes {
			fmt.Printf("%-10s %s\n", a.Name, a.Description)
			fmt.Printf("           typical: %s\n", strings.Join(a.Features, ", "))
			var expectations []string
			if a.RequiresPath {
				expectations = append(expectations, "one START and one END")
			}
			if a.Enclosed {
				expectations = append(expectations, "solid boundary")
			}
			if len(expectations) > 0 {
				fmt.Printf("           expects: %s\n", strings.Join(expectations, "; "))
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(archetypesCmd)
}

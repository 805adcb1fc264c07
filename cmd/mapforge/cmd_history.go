package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.RecentGenerations(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No generations recorded yet.")
			return nil
		}
		for _, e := range entries {
			outcome := fmt.Sprintf("ok in %d attempt(s)", e.Attempts)
			if e.Fallback {
				outcome = fmt.Sprintf("fallback after %d attempt(s)", e.Attempts)
			}
			fmt.Printf("%s  %dx%d  %-30q  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Width, e.Height,
				clip(e.Description, 28), outcome)
		}
		return nil
	},
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max entries to show")
	rootCmd.AddCommand(historyCmd)
}

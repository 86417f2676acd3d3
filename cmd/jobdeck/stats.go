// Stats command prints aggregate counts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print application statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	log := newLogger()
	service, closeBackend, err := openService(log)
	if err != nil {
		return err
	}
	defer closeBackend()

	stats := service.Stats()
	if flagJSON {
		return printJSON(stats)
	}

	fmt.Printf("total:  %d\n", stats.Total)
	fmt.Printf("recent: %d (last 7 days)\n", stats.RecentCount)
	for status, n := range stats.ByStatus {
		fmt.Printf("  %-10s %d\n", status, n)
	}
	for priority, n := range stats.ByPriority {
		fmt.Printf("  %-10s %d\n", priority, n)
	}
	return nil
}

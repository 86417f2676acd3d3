// List command prints applications with optional filtering.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/pkg/types"
)

var (
	listStatus   string
	listPriority string
	listSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	Long: `List prints the tracked applications, optionally filtered.

Example:
  jobdeck list
  jobdeck list --status APPLIED
  jobdeck list --priority HIGH --search acme`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (TODO, APPLIED, INTERVIEW, OFFER, REJECTED, ARCHIVED)")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "filter by priority (LOW, MEDIUM, HIGH)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive substring filter")
}

func runList(cmd *cobra.Command, args []string) error {
	log := newLogger()
	service, closeBackend, err := openService(log)
	if err != nil {
		return err
	}
	defer closeBackend()

	records, err := service.List(types.Filter{
		Status:   listStatus,
		Priority: listPriority,
		Search:   listSearch,
	})
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}

	if flagJSON {
		return printJSON(records)
	}
	for _, a := range records {
		line := fmt.Sprintf("%s  [%s/%s]  %s", a.ID, a.Status, a.Priority, a.Company)
		if a.RoleTitle != "" {
			line += " / " + a.RoleTitle
		}
		if a.URL != "" {
			line += "  " + a.URL
		}
		fmt.Println(line)
	}
	return nil
}

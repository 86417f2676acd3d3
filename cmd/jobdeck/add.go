// Add command ingests links from the command line.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <entry>...",
	Short: "Add applications from links",
	Long: `Add ingests one or more link entries. Each entry is either
"Title|URL" or freeform text containing a URL. Entries without a parsable
URL, and duplicates of already tracked URLs, are skipped.

Example:
  jobdeck add https://example.com/jobs/42
  jobdeck add "Platform Engineer|https://example.com/jobs/43"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	log := newLogger()
	service, closeBackend, err := openService(log)
	if err != nil {
		return err
	}
	defer closeBackend()

	created, err := service.IngestLinks(args)
	if err != nil {
		return fmt.Errorf("ingest links: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("created %d of %d entries\n", len(created), len(args))
	for _, a := range created {
		fmt.Printf("%s  %s\n", a.ID, a.URL)
	}
	return nil
}

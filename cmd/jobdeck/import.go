// Import command restores the store from an exported table blob.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the store from an exported table blob",
	Long: `Import validates the given file parses as a well-formed table and
replaces the store content with it wholesale. The previous content is
overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	log := newLogger()
	service, closeBackend, err := openService(log)
	if err != nil {
		return err
	}
	defer closeBackend()

	records, err := service.Restore(data)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	if flagJSON {
		return printJSON(records)
	}
	fmt.Printf("restored %d applications\n", len(records))
	return nil
}

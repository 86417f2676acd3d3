// Export command writes the raw table blob for backup.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the table blob for backup",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := newLogger()
	service, closeBackend, err := openService(log)
	if err != nil {
		return err
	}
	defer closeBackend()

	data, err := service.Export()
	if err != nil {
		return fmt.Errorf("export table: %w", err)
	}

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "exported %d bytes to %s\n", len(data), exportOut)
	return nil
}

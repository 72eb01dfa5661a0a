package cmd

import (
	"fmt"

	"cellstats/internal/report"

	"github.com/spf13/cobra"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the unique values of every column",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "output format: text, markdown, json, yaml (default $REPORT_FORMAT or text)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(listFormat)
	if err != nil {
		return err
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}

	if err := report.WriteUniqueValues(cmd.OutOrStdout(), format, sess.UniqueValues()); err != nil {
		return fmt.Errorf("failed to write unique values: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"

	"cellstats/internal/report"
	"cellstats/internal/shell"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shellFormat string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the line-oriented prompt",
	Long: `Load the cells CSV, print the report and then prompt for actions:
add, delete, list, report or exit. Input may be piped in; the shell ends at EOF.`,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().StringVarP(&shellFormat, "format", "f", "", "format for list and report: text, markdown, json, yaml (default $REPORT_FORMAT or text)")
}

func runShell(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(shellFormat)
	if err != nil {
		return err
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}

	r := sess.Report()
	logReport(r)
	if err := report.Write(cmd.OutOrStdout(), format, r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := shell.New(sess, cmd.InOrStdin(), cmd.OutOrStdout(), format).Run(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	logger.Info("session ended", zap.Int("cells", sess.Len()))
	return nil
}

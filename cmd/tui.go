package cmd

import (
	"fmt"

	"cellstats/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive TUI (same as default)",
	Long: `Start the Terminal User Interface. It lets you add and delete cells,
browse the unique values of every column and read the analytics report.

Note: This is the same as running the program without any commands.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}
	logReport(sess.Report())

	p := tea.NewProgram(
		tui.NewModel(sess),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("session ended", zap.Int("cells", sess.Len()))
	return nil
}

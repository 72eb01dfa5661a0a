package cmd

import (
	"fmt"
	"time"

	"cellstats/internal/analytics"
	"cellstats/internal/config"
	"cellstats/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportFormat string
	outputDir    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the analytics report",
	Long: `Load the cells CSV and print the analytics report to stdout.
With --output the report is also written to a timestamped file in that directory.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "report format: text, markdown, json, yaml (default $REPORT_FORMAT or text)")
	reportCmd.Flags().StringVarP(&outputDir, "output", "o", "", "also save the report in this directory (default $REPORT_OUTPUT_DIR)")
}

func runReport(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(reportFormat)
	if err != nil {
		return err
	}
	if outputDir == "" {
		outputDir = cfg.Report.OutputDir
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

	if outputDir != "" {
		path, err := report.SaveToDir(outputDir, format, r, time.Now())
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info("report saved", zap.String("path", path))
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", path)
	}
	return nil
}

// resolveFormat prefers the flag value over the configured format.
func resolveFormat(flag string) (string, error) {
	format := cfg.Report.Format
	if flag != "" {
		format = flag
	}
	for _, f := range config.ReportFormats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported report format %q", format)
}

func logReport(r analytics.Report) {
	fields := []zap.Field{
		zap.Int("cells", r.Cells),
		zap.Int("single_sensor_phones", r.SingleSensorPhones),
		zap.Int("different_announce_launch_years", r.DifferentAnnounceLaunch),
	}
	if r.HasHeaviestOEM {
		fields = append(fields,
			zap.String("heaviest_oem", r.HeaviestOEM.OEM.String),
			zap.Float64("heaviest_average_grams", r.HeaviestOEM.Average),
		)
	}
	if r.HasModeLaunchYear {
		fields = append(fields,
			zap.Int32("mode_launch_year", r.ModeLaunchYear.Year),
			zap.Int("mode_launch_year_phones", r.ModeLaunchYear.Count),
		)
	}
	logger.Info("report computed", fields...)
}

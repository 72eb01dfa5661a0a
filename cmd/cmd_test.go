package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheet = "oem,model,launch_announced,launch_status,body_dimensions,body_weight,body_sim,display_type,display_size,display_resolution,features_sensors,platform_os\n" +
	`Samsung,Galaxy S10,"2019, February 20","Available. Released 2019, March 08",149.9 x 70.4 x 7.8 mm,157 g (5.54 oz),Nano-SIM,Dynamic AMOLED,"6.1 inches, 93.2 cm2",1440 x 3040 pixels,Fingerprint,"Android 9.0, One UI"` + "\n" +
	`Nokia,3310,2000,Discontinued,-,133 g,Mini-SIM,Monochrome,-,84 x 48 pixels,-,-` + "\n"

// run executes the root command with args and returns stdout. Flag variables
// and every env var setup touches are restored afterwards.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"CELLS_CSV", "REPORT_FORMAT", "REPORT_OUTPUT_DIR", "LOG_FORMAT", "LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_LEVEL", "error")

	csvFile, logLevel, logFormat, verbose = "", "", "", false
	reportFormat, outputDir, listFormat, shellFormat = "", "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cells.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))
	return path
}

func TestReportCommand_JSON(t *testing.T) {
	out, err := run(t, "", "report", "--csv", writeSheet(t), "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 2, doc["cells"])
	assert.EqualValues(t, 1, doc["single_sensor_phones"])
}

func TestReportCommand_SavesFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "", "report", "-c", writeSheet(t), "--format", "yaml", "--output", dir)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "report_*.yaml"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestReportCommand_BadFormat(t *testing.T) {
	_, err := run(t, "", "report", "--csv", writeSheet(t), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "", "list", "--csv", writeSheet(t))
	require.NoError(t, err)
	assert.Contains(t, out, "oem: Samsung, Nokia")
	assert.Contains(t, out, "platform_os: Android 9.0")
}

func TestShellCommand(t *testing.T) {
	out, err := run(t, "delete\n2\nlist\nexit\n", "shell", "--csv", writeSheet(t))
	require.NoError(t, err)
	assert.Contains(t, out, "OEM with the highest average body weight: Samsung")
	assert.Contains(t, out, "Cell at index 2 has been deleted.")
	assert.Contains(t, out, "oem: Samsung\n")
}

func TestMissingCSV(t *testing.T) {
	_, err := run(t, "", "report", "--csv", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse CSV")
}

package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTableOutput(t *testing.T) {
	out, err := execute(t, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "JOB MIX")
	assert.Contains(t, out, "install")
	assert.Contains(t, out, "966 jobs")
	assert.Contains(t, out, "core-fuel")
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "S2")
	assert.Contains(t, out, "S3")
	assert.Contains(t, out, "total")
}

func TestReportCSVOutput(t *testing.T) {
	out, err := execute(t, "report", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(records), 1)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "core-fuel", records[1][0])
}

func TestReportJSONOutput(t *testing.T) {
	out, err := execute(t, "report", "--format", "json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report["run_id"])
	assert.Contains(t, report, "result")
}

func TestReportUnknownFormat(t *testing.T) {
	_, err := execute(t, "report", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestReportOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	_, err := execute(t, "report", "--format", "csv", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "core-fuel")
}

func TestReportWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbontally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
parameters:
  total_jobs_per_year: 10
job_types:
  - job_type: a
    share: 1
  - job_type: b
    share: 1
  - job_type: c
    share: 1
`), 0600))

	out, err := execute(t, "report", "--config", path)
	require.NoError(t, err)

	// 10 jobs over three equal shares round to 3 each; the drift from the
	// stated total is preserved.
	assert.Equal(t, 3, strings.Count(out, "3 jobs"))
}

func TestReportMissingConfigFile(t *testing.T) {
	_, err := execute(t, "report", "--config", "/nonexistent/carbontally.yaml")
	assert.Error(t, err)
}

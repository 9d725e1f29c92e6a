package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOverwritesFixedPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exp := NewExporter(dir, true)

	require.NoError(t, exp.Export(Donut(sampleRecords(), 0)))
	path := filepath.Join(dir, "loan_status_donut.html")
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(first), "Dependents = 0")

	require.NoError(t, exp.Export(Donut(sampleRecords(), 3)))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(second), "Dependents = 3")
	assert.NotContains(t, string(second), "Dependents = 0")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestExportWritesOneFilePerChart(t *testing.T) {
	dir := t.TempDir()
	exp := NewExporter(dir, true)

	records := sampleRecords()
	for _, f := range []*Figure{Pie(records), Histogram(records, DefaultBins), Donut(records, 0), Heatmap(records), Scatter(records)} {
		require.NoError(t, exp.Export(f))
	}

	for _, name := range ExportFiles() {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestDisabledExporterWritesNothing(t *testing.T) {
	dir := t.TempDir()
	exp := NewExporter(dir, false)

	require.NoError(t, exp.Export(Pie(sampleRecords())))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.False(t, exp.Enabled())

	var nilExporter *Exporter
	assert.False(t, nilExporter.Enabled())
	assert.NoError(t, nilExporter.Export(Pie(nil)))
}

package charts

import (
	"os"
	"path/filepath"
	"sync"

	"loandash/internal"
	"loandash/internal/errors"
)

// Exporter overwrites one standalone HTML file per chart every time the chart
// is rebuilt. Nothing in the dashboard reads these files back.
type Exporter struct {
	dir     string
	enabled bool
	mu      sync.Mutex
}

// NewExporter creates an exporter writing into dir. A disabled exporter does nothing.
func NewExporter(dir string, enabled bool) *Exporter {
	return &Exporter{dir: dir, enabled: enabled}
}

// Enabled reports whether exports are written.
func (e *Exporter) Enabled() bool {
	return e != nil && e.enabled
}

// Dir is the export directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Path is where a chart's export lives.
func (e *Exporter) Path(id ChartID) string {
	return filepath.Join(e.dir, id.ExportFile())
}

// Export renders the figure and replaces its file. The write goes through a
// temporary file in the same directory so readers never see a partial page.
func (e *Exporter) Export(f *Figure) error {
	if !e.Enabled() {
		return nil
	}

	content, err := f.HTML()
	if err != nil {
		return errors.Wrapf(err, "failed to render %s", f.ID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create export directory")
	}

	tmp, err := os.CreateTemp(e.dir, "."+string(f.ID)+"-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary export file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write export")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to close export")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to set export permissions")
	}
	if err := os.Rename(tmpName, e.Path(f.ID)); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to replace export")
	}

	internal.DefaultLogger.Debug("[Exporter] Wrote %s (%d bytes, %d rows)", e.Path(f.ID), len(content), f.Rows)
	return nil
}

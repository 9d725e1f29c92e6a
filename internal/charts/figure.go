// Package charts turns filtered loan records into ECharts specifications.
//
// Every builder is a pure function of its inputs: category order is sorted and
// chart ids are fixed, so the same records always yield byte-identical output.
package charts

import (
	"bytes"
	"html/template"
	"io"
)

// ChartID identifies one dashboard chart. It doubles as the DOM id.
type ChartID string

const (
	ChartPie       ChartID = "loan_approval_pie"
	ChartHistogram ChartID = "loan_amount_distribution"
	ChartDonut     ChartID = "loan_status_donut"
	ChartHeatmap   ChartID = "loan_approval_by_gender"
	ChartScatter   ChartID = "income_vs_loan_amount"
)

var exportFiles = map[ChartID]string{
	ChartPie:       "loan_approval_pie.html",
	ChartHistogram: "loan_amount_distribution.html",
	ChartDonut:     "loan_status_donut.html",
	ChartHeatmap:   "loan_approval_by_gender_heatmap.html",
	ChartScatter:   "income_vs_loan_amount.html",
}

// All returns every chart in page order.
func All() []ChartID {
	return []ChartID{ChartPie, ChartHistogram, ChartDonut, ChartHeatmap, ChartScatter}
}

// Parse validates a chart id received from outside.
func Parse(s string) (ChartID, bool) {
	id := ChartID(s)
	_, ok := exportFiles[id]
	return id, ok
}

// ExportFile is the fixed file name the chart is exported to.
func (id ChartID) ExportFile() string {
	return exportFiles[id]
}

// ExportFiles lists all export file names.
func ExportFiles() []string {
	files := make([]string, 0, len(exportFiles))
	for _, id := range All() {
		files = append(files, id.ExportFile())
	}
	return files
}

// echart is the part of a go-echarts chart the dashboard needs.
type echart interface {
	Validate()
	JSONNotEscaped() template.HTML
	Render(w io.Writer) error
}

// Figure is one built chart.
type Figure struct {
	ID    ChartID
	Title string
	Rows  int // records the chart was built from

	chart echart
}

// Option returns the ECharts option object as JSON.
func (f *Figure) Option() string {
	f.chart.Validate()
	return string(f.chart.JSONNotEscaped())
}

// Render writes the chart as a standalone HTML page.
func (f *Figure) Render(w io.Writer) error {
	return f.chart.Render(w)
}

// HTML renders the standalone page into memory.
func (f *Figure) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

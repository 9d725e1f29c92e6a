package dataset

import (
	"sort"

	"loandash/adapters/excel"
	"loandash/domain/loan"
	"loandash/internal"
	"loandash/internal/errors"
)

// Dataset is the cleaned, read-only base table. It is built once and shared
// by every filter and chart; nothing mutates it after construction.
type Dataset struct {
	source   string
	records  []loan.Record
	areas    []string
	statuses []string
	report   Report
}

// New builds a Dataset from already-clean records
func New(source string, records []loan.Record, report Report) *Dataset {
	owned := make([]loan.Record, len(records))
	copy(owned, records)

	ds := &Dataset{
		source:  source,
		records: owned,
		report:  report,
	}

	seenArea := make(map[string]bool)
	seenStatus := make(map[string]bool)
	for _, r := range owned {
		if !seenArea[r.PropertyArea] {
			seenArea[r.PropertyArea] = true
			ds.areas = append(ds.areas, r.PropertyArea)
		}
		if !seenStatus[r.LoanStatus] {
			seenStatus[r.LoanStatus] = true
			ds.statuses = append(ds.statuses, r.LoanStatus)
		}
	}
	sort.Strings(ds.statuses)

	return ds
}

// Load reads, cleans and decodes the file at path
func Load(path string) (*Dataset, error) {
	table, err := excel.NewDataReader(path).ReadData()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return FromTable(path, table)
}

// FromTable cleans and decodes a table. The table is modified in place.
func FromTable(source string, table *excel.Table) (*Dataset, error) {
	if err := CheckColumns(table); err != nil {
		return nil, err
	}

	report, err := Impute(table, DefaultPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "imputation failed")
	}
	for _, f := range report.Fills {
		internal.DefaultLogger.Info("[Dataset] %s: filled %d missing with %s %q", f.Column, f.Count, f.Strategy, f.Value)
	}

	records, err := Decode(table)
	if err != nil {
		return nil, errors.Wrap(err, "decode failed")
	}

	ds := New(source, records, report)
	internal.DefaultLogger.Info("[Dataset] Loaded %d records from %s (areas: %v)", ds.Len(), source, ds.Areas())
	return ds, nil
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Source returns the path the dataset was loaded from
func (d *Dataset) Source() string {
	return d.source
}

// Records returns a copy of all records in file order
func (d *Dataset) Records() []loan.Record {
	out := make([]loan.Record, len(d.records))
	copy(out, d.records)
	return out
}

// Filter returns a new slice with the records keep accepts, in file order
func (d *Dataset) Filter(keep func(loan.Record) bool) []loan.Record {
	out := make([]loan.Record, 0, len(d.records))
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Areas returns the distinct Property_Area values in first-appearance order
func (d *Dataset) Areas() []string {
	return append([]string(nil), d.areas...)
}

// Statuses returns the distinct Loan_Status values, sorted
func (d *Dataset) Statuses() []string {
	return append([]string(nil), d.statuses...)
}

// Report returns the imputation report produced at load time
func (d *Dataset) Report() Report {
	return d.report
}

package dataset

import (
	"sort"
	"strconv"
	"strings"

	"loandash/adapters/excel"
	"loandash/domain/loan"
	"loandash/internal/errors"

	"github.com/montanaflynn/stats"
)

// Strategy selects how a column's missing cells are filled
type Strategy int

const (
	// StrategyMode fills with the most frequent value
	StrategyMode Strategy = iota
	// StrategyMedian fills with the median of the parsed numeric values
	StrategyMedian
)

func (s Strategy) String() string {
	switch s {
	case StrategyMode:
		return "mode"
	case StrategyMedian:
		return "median"
	default:
		return "unknown"
	}
}

// ColumnPolicy binds a column to its imputation strategy
type ColumnPolicy struct {
	Column   string
	Strategy Strategy
}

// DefaultPolicy is the cleaning policy for loan application files
var DefaultPolicy = []ColumnPolicy{
	{Column: loan.ColGender, Strategy: StrategyMode},
	{Column: loan.ColDependents, Strategy: StrategyMode},
	{Column: loan.ColSelfEmployed, Strategy: StrategyMode},
	{Column: loan.ColLoanAmount, Strategy: StrategyMedian},
	{Column: loan.ColLoanAmountTerm, Strategy: StrategyMedian},
	{Column: loan.ColCreditHistory, Strategy: StrategyMode},
}

// Fill describes what was written into one column
type Fill struct {
	Column   string
	Strategy Strategy
	Value    string
	Count    int
}

// Report lists the fills applied by Impute, in policy order
type Report struct {
	Fills []Fill
}

// Fill looks up the fill for a column
func (r Report) Fill(column string) (Fill, bool) {
	for _, f := range r.Fills {
		if f.Column == column {
			return f, true
		}
	}
	return Fill{}, false
}

// Total returns the number of cells filled across all columns
func (r Report) Total() int {
	total := 0
	for _, f := range r.Fills {
		total += f.Count
	}
	return total
}

var missingMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
	"#n/a": true,
}

// IsMissing reports whether a raw cell counts as a missing value
func IsMissing(v string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(v))]
}

// Impute fills missing cells of the policy columns in place. Fill values are
// computed from the column as read, before any cell is replaced.
func Impute(table *excel.Table, policy []ColumnPolicy) (Report, error) {
	report := Report{Fills: make([]Fill, 0, len(policy))}

	for _, p := range policy {
		if !table.HasColumn(p.Column) {
			return report, errors.DataErrorf("column %s is missing", p.Column)
		}

		values := table.Column(p.Column)
		var (
			fill string
			err  error
		)
		switch p.Strategy {
		case StrategyMode:
			fill, err = modeOf(values)
		case StrategyMedian:
			fill, err = medianOf(values)
		default:
			err = errors.InternalError("unknown imputation strategy " + p.Strategy.String())
		}
		if err != nil {
			return report, errors.Wrapf(err, "cannot impute column %s", p.Column)
		}

		count := 0
		for _, row := range table.Rows {
			if IsMissing(row[p.Column]) {
				row[p.Column] = fill
				count++
			}
		}

		report.Fills = append(report.Fills, Fill{
			Column:   p.Column,
			Strategy: p.Strategy,
			Value:    fill,
			Count:    count,
		})
	}

	return report, nil
}

// modeOf returns the most frequent non-missing value; ties go to the smallest value
func modeOf(values []string) (string, error) {
	counts := make(map[string]int)
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return "", errors.DataError("no non-missing values")
	}

	candidates := make([]string, 0, len(counts))
	for v := range counts {
		candidates = append(candidates, v)
	}
	sort.Strings(candidates)

	best := candidates[0]
	for _, v := range candidates[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, nil
}

// medianOf returns the median of the non-missing values formatted without trailing zeros
func medianOf(values []string) (string, error) {
	nums := make([]float64, 0, len(values))
	for i, v := range values {
		if IsMissing(v) {
			continue
		}
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", errors.DataErrorf("row %d: %q is not numeric", i+1, v)
		}
		nums = append(nums, num)
	}
	if len(nums) == 0 {
		return "", errors.DataError("no non-missing values")
	}

	median, err := stats.Median(nums)
	if err != nil {
		return "", errors.Wrap(err, "median failed")
	}
	return strconv.FormatFloat(median, 'f', -1, 64), nil
}

package charts

import (
	"math"
	"sort"

	"loandash/domain/loan"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Count is the size of one category.
type Count struct {
	Label string
	Value int
}

// StatusCounts partitions records by Loan_Status, sorted by status.
func StatusCounts(records []loan.Record) []Count {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.LoanStatus]++
	}

	labels := sortedKeys(counts)
	out := make([]Count, 0, len(labels))
	for _, l := range labels {
		out = append(out, Count{Label: l, Value: counts[l]})
	}
	return out
}

// Bin is one histogram bar covering [Lower, Upper); the last bin includes Upper.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// LoanAmountBins splits LoanAmount into n equal-width bins spanning the
// observed range. No records gives no bins.
func LoanAmountBins(records []loan.Record, n int) []Bin {
	if len(records) == 0 || n < 1 {
		return nil
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.LoanAmount
	}
	sort.Float64s(values)

	lo, hi := values[0], values[len(values)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := floats.Span(make([]float64, n+1), lo, hi)
	dividers := append([]float64(nil), edges...)
	// stat.Histogram treats the last divider as exclusive
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, values, nil)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i] = Bin{Lower: edges[i], Upper: edges[i+1], Count: int(counts[i])}
	}
	return bins
}

// Grid holds counts of Gender (X) by Loan_Status (Y). Counts is indexed [x][y].
type Grid struct {
	X      []string
	Y      []string
	Counts [][]int
}

// Max returns the largest cell count.
func (g Grid) Max() int {
	peak := 0
	for _, col := range g.Counts {
		for _, c := range col {
			peak = max(peak, c)
		}
	}
	return peak
}

// GenderStatusGrid cross-tabulates Gender against Loan_Status.
func GenderStatusGrid(records []loan.Record) Grid {
	genders := make(map[string]int)
	statuses := make(map[string]int)
	for _, r := range records {
		genders[r.Gender]++
		statuses[r.LoanStatus]++
	}

	g := Grid{X: sortedKeys(genders), Y: sortedKeys(statuses)}
	xi := indexOf(g.X)
	yi := indexOf(g.Y)

	g.Counts = make([][]int, len(g.X))
	for i := range g.Counts {
		g.Counts[i] = make([]int, len(g.Y))
	}
	for _, r := range records {
		g.Counts[xi[r.Gender]][yi[r.LoanStatus]]++
	}
	return g
}

// MaxSymbolSize is the marker diameter of the highest income in a scatter.
const MaxSymbolSize = 20

// Point is one scatter marker.
type Point struct {
	LoanID string
	Income float64
	Amount float64
	Size   int
}

// PointGroup is one scatter series.
type PointGroup struct {
	Status string
	Points []Point
}

// IncomePoints groups ApplicantIncome vs LoanAmount by Loan_Status. Marker
// diameter scales linearly with income, largest income at MaxSymbolSize.
func IncomePoints(records []loan.Record) []PointGroup {
	maxIncome := 0.0
	for _, r := range records {
		maxIncome = math.Max(maxIncome, r.ApplicantIncome)
	}

	groups := make(map[string][]Point)
	for _, r := range records {
		groups[r.LoanStatus] = append(groups[r.LoanStatus], Point{
			LoanID: r.LoanID,
			Income: r.ApplicantIncome,
			Amount: r.LoanAmount,
			Size:   symbolSize(r.ApplicantIncome, maxIncome),
		})
	}

	statuses := make([]string, 0, len(groups))
	for s := range groups {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	out := make([]PointGroup, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, PointGroup{Status: s, Points: groups[s]})
	}
	return out
}

func symbolSize(income, maxIncome float64) int {
	if maxIncome <= 0 || income <= 0 {
		return 1
	}
	size := int(math.Round(income / maxIncome * MaxSymbolSize))
	if size < 1 {
		return 1
	}
	return size
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}

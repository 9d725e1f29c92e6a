package charts

import (
	"fmt"
	"strconv"

	"loandash/domain/loan"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultBins is the histogram bin count when none is configured.
const DefaultBins = 30

// donutHole is the inner radius that turns a pie into a donut.
const donutHole = "40%"

// Pie builds the Loan_Status distribution of the area-filtered records.
func Pie(records []loan.Record) *Figure {
	return statusPie(ChartPie, "Loan Approval Distribution", records, "0%")
}

// Donut builds the Loan_Status distribution of records already filtered by
// area and dependents. dependents is the slider position.
func Donut(records []loan.Record, dependents int) *Figure {
	title := fmt.Sprintf("Loan Status Distribution for Dependents = %s", loan.DependentsLabel(dependents))
	return statusPie(ChartDonut, title, records, donutHole)
}

func statusPie(id ChartID, title string, records []loan.Record, hole string) *Figure {
	pie := echarts.NewPie()
	pie.SetGlobalOptions(darkTheme(id, title)...)

	counts := StatusCounts(records)
	items := make([]opts.PieData, 0, len(counts))
	for _, c := range counts {
		items = append(items, opts.PieData{Name: c.Label, Value: c.Value})
	}

	pie.AddSeries("Loan_Status", items,
		echarts.WithPieChartOpts(opts.PieChart{Radius: []string{hole, "70%"}}),
		echarts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Color:     foreground,
			Formatter: "{b}: {d}%",
		}),
	)

	return &Figure{ID: id, Title: title, Rows: len(records), chart: pie}
}

// Histogram builds the LoanAmount distribution using bins equal-width bins.
func Histogram(records []loan.Record, bins int) *Figure {
	const title = "Loan Amount Distribution"
	if bins < 1 {
		bins = DefaultBins
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(darkTheme(ChartHistogram, title)...)
	bar.SetGlobalOptions(
		echarts.WithXAxisOpts(opts.XAxis{
			Name:      loan.ColLoanAmount,
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name: "count",
			Type: "value",
		}),
	)

	hist := LoanAmountBins(records, bins)
	labels := make([]string, len(hist))
	data := make([]opts.BarData, len(hist))
	for i, b := range hist {
		labels[i] = formatAmount(b.Lower) + "-" + formatAmount(b.Upper)
		data[i] = opts.BarData{Value: b.Count}
	}

	bar.SetXAxis(labels).AddSeries("count", data,
		echarts.WithBarChartOpts(opts.BarChart{BarGap: "0%"}),
	)

	return &Figure{ID: ChartHistogram, Title: title, Rows: len(records), chart: bar}
}

// Heatmap builds counts of Gender by Loan_Status with the count printed in each cell.
func Heatmap(records []loan.Record) *Figure {
	const title = "Loan Approval Heatmap by Gender"

	grid := GenderStatusGrid(records)
	peak := grid.Max()
	if peak == 0 {
		peak = 1
	}

	hm := echarts.NewHeatMap()
	hm.SetGlobalOptions(darkTheme(ChartHeatmap, title)...)
	hm.SetGlobalOptions(
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		echarts.WithXAxisOpts(opts.XAxis{
			Name:      "Gender",
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name:      "Loan Status",
			Type:      "category",
			Data:      grid.Y,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		echarts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(peak),
			InRange:    &opts.VisualMapInRange{Color: Blues},
		}),
	)

	data := make([]opts.HeatMapData, 0, len(grid.X)*len(grid.Y))
	for x := range grid.X {
		for y := range grid.Y {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, grid.Counts[x][y]}})
		}
	}

	hm.SetXAxis(grid.X).AddSeries("count", data,
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	return &Figure{ID: ChartHeatmap, Title: title, Rows: len(records), chart: hm}
}

// Scatter builds ApplicantIncome against LoanAmount, one series per Loan_Status.
func Scatter(records []loan.Record) *Figure {
	const title = "Applicant Income vs Loan Amount"

	sc := echarts.NewScatter()
	sc.SetGlobalOptions(darkTheme(ChartScatter, title)...)
	sc.SetGlobalOptions(
		echarts.WithXAxisOpts(opts.XAxis{
			Name: loan.ColApplicantIncome,
			Type: "value",
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name: loan.ColLoanAmount,
			Type: "value",
		}),
	)

	for _, group := range IncomePoints(records) {
		data := make([]opts.ScatterData, len(group.Points))
		for i, p := range group.Points {
			data[i] = opts.ScatterData{
				Name:       p.LoanID,
				Value:      []interface{}{p.Income, p.Amount},
				SymbolSize: p.Size,
			}
		}
		sc.AddSeries(group.Status, data)
	}

	return &Figure{ID: ChartScatter, Title: title, Rows: len(records), chart: sc}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

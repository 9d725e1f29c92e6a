package charts

import (
	"bytes"
	"testing"

	"loandash/domain/loan"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleRecords() []loan.Record {
	return []loan.Record{
		{LoanID: "LP1", Gender: "Male", Dependents: "0", ApplicantIncome: 5000, LoanAmount: 100, PropertyArea: "Urban", LoanStatus: "Y"},
		{LoanID: "LP2", Gender: "Female", Dependents: "1", ApplicantIncome: 2500, LoanAmount: 120, PropertyArea: "Urban", LoanStatus: "N"},
		{LoanID: "LP3", Gender: "Male", Dependents: "3+", ApplicantIncome: 10000, LoanAmount: 300, PropertyArea: "Rural", LoanStatus: "Y"},
		{LoanID: "LP4", Gender: "Male", Dependents: "0", ApplicantIncome: 4000, LoanAmount: 90, PropertyArea: "Semiurban", LoanStatus: "N"},
		{LoanID: "LP5", Gender: "Female", Dependents: "2", ApplicantIncome: 3000, LoanAmount: 150, PropertyArea: "Urban", LoanStatus: "Y"},
	}
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(sampleRecords())
	assert.Equal(t, []Count{{Label: "N", Value: 2}, {Label: "Y", Value: 3}}, counts)
	assert.Empty(t, StatusCounts(nil))
}

func TestLoanAmountBins(t *testing.T) {
	bins := LoanAmountBins(sampleRecords(), 3)
	require.Len(t, bins, 3)

	// range 90..300 in three bins of width 70
	assert.InDelta(t, 90.0, bins[0].Lower, 1e-9)
	assert.InDelta(t, 160.0, bins[0].Upper, 1e-9)
	assert.InDelta(t, 300.0, bins[2].Upper, 1e-9)
	assert.Equal(t, 4, bins[0].Count)
	assert.Equal(t, 0, bins[1].Count)
	assert.Equal(t, 1, bins[2].Count, "maximum lands in the last bin")

	total := 0
	for _, b := range LoanAmountBins(sampleRecords(), DefaultBins) {
		total += b.Count
	}
	assert.Equal(t, len(sampleRecords()), total)
}

func TestLoanAmountBinsDegenerate(t *testing.T) {
	assert.Nil(t, LoanAmountBins(nil, 10))

	same := []loan.Record{{LoanAmount: 128}, {LoanAmount: 128}}
	bins := LoanAmountBins(same, 4)
	require.Len(t, bins, 4)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestGenderStatusGrid(t *testing.T) {
	grid := GenderStatusGrid(sampleRecords())

	assert.Equal(t, []string{"Female", "Male"}, grid.X)
	assert.Equal(t, []string{"N", "Y"}, grid.Y)
	assert.Equal(t, [][]int{{1, 1}, {1, 2}}, grid.Counts)
	assert.Equal(t, 2, grid.Max())

	empty := GenderStatusGrid(nil)
	assert.Empty(t, empty.X)
	assert.Equal(t, 0, empty.Max())
}

func TestIncomePoints(t *testing.T) {
	groups := IncomePoints(sampleRecords())
	require.Len(t, groups, 2)

	assert.Equal(t, "N", groups[0].Status)
	assert.Len(t, groups[0].Points, 2)
	assert.Equal(t, "Y", groups[1].Status)
	require.Len(t, groups[1].Points, 3)

	// LP3 has the top income
	assert.Equal(t, "LP3", groups[1].Points[1].LoanID)
	assert.Equal(t, MaxSymbolSize, groups[1].Points[1].Size)
	assert.Equal(t, 10, groups[1].Points[0].Size)
}

func TestBuildersAreIdempotent(t *testing.T) {
	records := sampleRecords()
	builders := map[ChartID]func() *Figure{
		ChartPie:       func() *Figure { return Pie(records) },
		ChartHistogram: func() *Figure { return Histogram(records, DefaultBins) },
		ChartDonut:     func() *Figure { return Donut(records, 1) },
		ChartHeatmap:   func() *Figure { return Heatmap(records) },
		ChartScatter:   func() *Figure { return Scatter(records) },
	}

	for id, build := range builders {
		t.Run(string(id), func(t *testing.T) {
			first, second := build(), build()
			assert.Equal(t, id, first.ID)
			assert.Equal(t, first.Option(), second.Option())

			a, err := first.HTML()
			require.NoError(t, err)
			b, err := second.HTML()
			require.NoError(t, err)
			assert.True(t, bytes.Equal(a, b), "standalone HTML differs between identical builds")
			assert.Contains(t, string(a), string(id))
		})
	}
}

var (
	_ echart = (*echarts.Pie)(nil)
	_ echart = (*echarts.Bar)(nil)
	_ echart = (*echarts.HeatMap)(nil)
	_ echart = (*echarts.Scatter)(nil)
)

func TestOptionIsStableAcrossRenders(t *testing.T) {
	records := sampleRecords()
	figures := []*Figure{
		Pie(records),
		Histogram(records, DefaultBins),
		Donut(records, 1),
		Heatmap(records),
		Scatter(records),
	}

	for _, fig := range figures {
		t.Run(string(fig.ID), func(t *testing.T) {
			before := fig.Option()
			require.True(t, gjson.Valid(before), "option is not valid JSON")

			_, err := fig.HTML()
			require.NoError(t, err)
			assert.Equal(t, before, fig.Option())
		})
	}
}

func TestPieOption(t *testing.T) {
	fig := Pie(sampleRecords())
	option := fig.Option()

	assert.Equal(t, int64(2), gjson.Get(option, "series.0.data.#").Int())
	assert.Equal(t, "N", gjson.Get(option, "series.0.data.0.name").String())
	assert.Equal(t, int64(3), gjson.Get(option, "series.0.data.1.value").Int())
	assert.Contains(t, option, "Loan Approval Distribution")
	assert.Equal(t, 5, fig.Rows)
}

func TestDonutTitleAndHole(t *testing.T) {
	fig := Donut(nil, 3)
	assert.Equal(t, "Loan Status Distribution for Dependents = 3+", fig.Title)

	option := fig.Option()
	assert.Equal(t, "40%", gjson.Get(option, "series.0.radius.0").String())
	assert.Equal(t, int64(0), gjson.Get(option, "series.0.data.#").Int())

	assert.Equal(t, "Loan Status Distribution for Dependents = 1", Donut(nil, 1).Title)
}

func TestHeatmapOption(t *testing.T) {
	option := Heatmap(sampleRecords()).Option()

	assert.Equal(t, int64(4), gjson.Get(option, "series.0.data.#").Int())
	assert.True(t, gjson.Get(option, "series.0.label.show").Bool())
	assert.Equal(t, int64(2), gjson.Get(option, "visualMap.0.max").Int())
}

func TestScatterOption(t *testing.T) {
	option := Scatter(sampleRecords()).Option()

	names := gjson.Get(option, "series.#.name").Array()
	require.Len(t, names, 2)
	assert.Equal(t, "N", names[0].String())
	assert.Equal(t, "Y", names[1].String())
	assert.Equal(t, int64(MaxSymbolSize), gjson.Get(option, "series.1.data.1.symbolSize").Int())
}

func TestEmptyRecordsBuildEmptyCharts(t *testing.T) {
	figures := []*Figure{Pie(nil), Histogram(nil, DefaultBins), Donut(nil, 0), Heatmap(nil), Scatter(nil)}
	for _, fig := range figures {
		t.Run(string(fig.ID), func(t *testing.T) {
			assert.Equal(t, 0, fig.Rows)
			assert.NotPanics(t, func() { _ = fig.Option() })
			_, err := fig.HTML()
			assert.NoError(t, err)
		})
	}
}

func TestParseAndExportFiles(t *testing.T) {
	id, ok := Parse("loan_status_donut")
	assert.True(t, ok)
	assert.Equal(t, ChartDonut, id)

	_, ok = Parse("pie")
	assert.False(t, ok)

	assert.Equal(t, "loan_approval_by_gender_heatmap.html", ChartHeatmap.ExportFile())
	assert.Len(t, ExportFiles(), len(All()))
}

package charts

import (
	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	background = "#000000"
	foreground = "#ffffff"
	height     = "450px"
)

// Plasma is the discrete palette shared by all charts.
var Plasma = []string{
	"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
	"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
}

// Blues is the continuous scale of the heatmap, light to dark.
var Blues = []string{
	"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
	"#4292c6", "#2171b5", "#08519c", "#08306b",
}

// Theme is the ECharts theme registered by the page.
const Theme = types.ThemeChalk

// darkTheme returns the options every chart starts from.
func darkTheme(id ChartID, title string) []echarts.GlobalOpts {
	return []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle:       title,
			ChartID:         string(id),
			Theme:           Theme,
			BackgroundColor: background,
			Width:           "100%",
			Height:          height,
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:      title,
			TitleStyle: &opts.TextStyle{Color: foreground},
		}),
		echarts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Top:       "bottom",
			TextStyle: &opts.TextStyle{Color: foreground},
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		echarts.WithColorsOpts(opts.Colors(Plasma)),
	}
}

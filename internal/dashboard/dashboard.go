package dashboard

import (
	"loandash/internal"
	"loandash/internal/charts"
	"loandash/internal/dataset"
	"loandash/internal/errors"
)

// callback rebuilds one chart from the controls it lists in inputs.
type callback struct {
	chart  charts.ChartID
	inputs []ControlID
	build  func(vm *ViewModel, s State) *charts.Figure
}

// Dashboard owns the dependency table between controls and charts.
type Dashboard struct {
	vm        *ViewModel
	exporter  *charts.Exporter
	callbacks []callback
}

// New wires the five charts to their controls. exporter may be nil.
func New(base *dataset.Dataset, exporter *charts.Exporter, bins int) *Dashboard {
	area := []ControlID{ControlArea}
	areaAndDependents := []ControlID{ControlArea, ControlDependents}

	return &Dashboard{
		vm:       NewViewModel(base),
		exporter: exporter,
		callbacks: []callback{
			{
				chart:  charts.ChartPie,
				inputs: area,
				build: func(vm *ViewModel, s State) *charts.Figure {
					return charts.Pie(vm.ByArea(s.Areas))
				},
			},
			{
				chart:  charts.ChartHistogram,
				inputs: area,
				build: func(vm *ViewModel, s State) *charts.Figure {
					return charts.Histogram(vm.ByArea(s.Areas), bins)
				},
			},
			{
				chart:  charts.ChartDonut,
				inputs: areaAndDependents,
				build: func(vm *ViewModel, s State) *charts.Figure {
					return charts.Donut(vm.ByAreaAndDependents(s.Areas, s.Dependents), s.Dependents)
				},
			},
			{
				chart:  charts.ChartHeatmap,
				inputs: area,
				build: func(vm *ViewModel, s State) *charts.Figure {
					return charts.Heatmap(vm.ByArea(s.Areas))
				},
			},
			{
				chart:  charts.ChartScatter,
				inputs: area,
				build: func(vm *ViewModel, s State) *charts.Figure {
					return charts.Scatter(vm.ByArea(s.Areas))
				},
			},
		},
	}
}

// ViewModel exposes the filters.
func (d *Dashboard) ViewModel() *ViewModel {
	return d.vm
}

// DefaultState is the state a new client starts from.
func (d *Dashboard) DefaultState() State {
	return d.vm.DefaultState()
}

// Dependencies returns the controls each chart depends on.
func (d *Dashboard) Dependencies() map[charts.ChartID][]ControlID {
	deps := make(map[charts.ChartID][]ControlID, len(d.callbacks))
	for _, cb := range d.callbacks {
		deps[cb.chart] = append([]ControlID(nil), cb.inputs...)
	}
	return deps
}

// Affected lists the charts that depend on control, in page order.
func (d *Dashboard) Affected(control ControlID) []charts.ChartID {
	var ids []charts.ChartID
	for _, cb := range d.callbacks {
		if cb.dependsOn(control) {
			ids = append(ids, cb.chart)
		}
	}
	return ids
}

// Render builds every chart for s.
func (d *Dashboard) Render(s State) []*charts.Figure {
	figures := make([]*charts.Figure, 0, len(d.callbacks))
	for _, cb := range d.callbacks {
		figures = append(figures, d.run(cb, s))
	}
	return figures
}

// Recompute builds only the charts that depend on control.
func (d *Dashboard) Recompute(s State, control ControlID) []*charts.Figure {
	var figures []*charts.Figure
	for _, cb := range d.callbacks {
		if cb.dependsOn(control) {
			figures = append(figures, d.run(cb, s))
		}
	}
	internal.DefaultLogger.Debug("[Dashboard] %s changed, rebuilt %d charts", control, len(figures))
	return figures
}

// Build builds a single chart for s.
func (d *Dashboard) Build(s State, id charts.ChartID) (*charts.Figure, error) {
	for _, cb := range d.callbacks {
		if cb.chart == id {
			return d.run(cb, s), nil
		}
	}
	return nil, errors.NotFound("chart " + string(id))
}

// Summary computes the headline figures of the area selection.
func (d *Dashboard) Summary(s State) Summary {
	return Summarize(d.vm.ByArea(s.Areas))
}

// run executes one callback and hands the result to the exporter.
func (d *Dashboard) run(cb callback, s State) *charts.Figure {
	fig := cb.build(d.vm, s)
	if d.exporter.Enabled() {
		if err := d.exporter.Export(fig); err != nil {
			internal.DefaultLogger.Warn("[Dashboard] Export of %s failed: %v", fig.ID, err)
		}
	}
	return fig
}

func (cb callback) dependsOn(control ControlID) bool {
	for _, in := range cb.inputs {
		if in == control {
			return true
		}
	}
	return false
}

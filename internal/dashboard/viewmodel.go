package dashboard

import (
	"loandash/domain/loan"
	"loandash/internal/dataset"
)

// ViewModel derives filtered views from the shared base dataset. It never
// modifies the dataset; every call returns a fresh slice.
type ViewModel struct {
	base *dataset.Dataset
}

// NewViewModel wraps the base dataset.
func NewViewModel(base *dataset.Dataset) *ViewModel {
	return &ViewModel{base: base}
}

// Dataset returns the base dataset.
func (v *ViewModel) Dataset() *dataset.Dataset {
	return v.base
}

// ByArea keeps records whose Property_Area is selected. An empty selection keeps nothing.
func (v *ViewModel) ByArea(areas []string) []loan.Record {
	selected := toSet(areas)
	return v.base.Filter(func(r loan.Record) bool {
		return selected[r.PropertyArea]
	})
}

// ByAreaAndDependents further keeps records whose Dependents matches the slider position.
func (v *ViewModel) ByAreaAndDependents(areas []string, dependents int) []loan.Record {
	selected := toSet(areas)
	label := loan.DependentsLabel(dependents)
	return v.base.Filter(func(r loan.Record) bool {
		return selected[r.PropertyArea] && r.Dependents == label
	})
}

// AreaOptions are the choices of the area multi-select.
func (v *ViewModel) AreaOptions() []string {
	return v.base.Areas()
}

// DefaultState selects every area and no dependents.
func (v *ViewModel) DefaultState() State {
	return State{Areas: v.AreaOptions(), Dependents: 0}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

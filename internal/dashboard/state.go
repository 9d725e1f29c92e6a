package dashboard

import (
	"strconv"
	"strings"

	"loandash/domain/loan"
	"loandash/internal"
	"loandash/internal/errors"
)

// ControlID names an input control. It is also the form/DOM id in the page.
type ControlID string

const (
	ControlArea       ControlID = "property_area_filter"
	ControlDependents ControlID = "dependents_slider"
)

// Controls lists every control in page order.
func Controls() []ControlID {
	return []ControlID{ControlArea, ControlDependents}
}

// ParseControl validates a control id received from outside.
func ParseControl(s string) (ControlID, bool) {
	for _, c := range Controls() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// State is the current value of every control for one client.
type State struct {
	Areas      []string
	Dependents int
}

// Clone returns a State that shares no memory with s.
func (s State) Clone() State {
	return State{
		Areas:      append([]string(nil), s.Areas...),
		Dependents: s.Dependents,
	}
}

// HasArea reports whether an area is selected.
func (s State) HasArea(area string) bool {
	for _, a := range s.Areas {
		if a == area {
			return true
		}
	}
	return false
}

// DependentsLabel is the Dependents value the slider position selects.
func (s State) DependentsLabel() string {
	return loan.DependentsLabel(s.Dependents)
}

// parseAreas keeps the values that are real options, once each, in the order given.
func parseAreas(values []string, options []string) []string {
	known := make(map[string]bool, len(options))
	for _, o := range options {
		known[o] = true
	}

	seen := make(map[string]bool, len(values))
	areas := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if !known[v] {
			internal.DefaultLogger.Warn("[Dashboard] Ignoring unknown area %q", v)
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		areas = append(areas, v)
	}
	return areas
}

// parseDependents accepts a single slider position between 0 and loan.MaxDependents.
func parseDependents(values []string) (int, error) {
	if len(values) != 1 {
		return 0, errors.InvalidInput("dependents takes exactly one value")
	}
	raw := strings.TrimSpace(values[0])
	if raw == loan.DependentsLabel(loan.MaxDependents) {
		return loan.MaxDependents, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > loan.MaxDependents {
		return 0, errors.InvalidInput("dependents must be between 0 and " + strconv.Itoa(loan.MaxDependents) + ", got " + strconv.Quote(raw))
	}
	return n, nil
}

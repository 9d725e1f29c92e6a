package ui

import (
	"html/template"

	"loandash/domain/loan"
	"loandash/internal/charts"
	"loandash/internal/dashboard"
)

// areaOption is one entry of the area multi-select
type areaOption struct {
	Value    string
	Selected bool
}

// sliderMark is one labelled position of the dependents slider
type sliderMark struct {
	Value int
	Label string
}

type chartView struct {
	ID        charts.ChartID
	Title     string
	Option    string
	ExportURL string
	OOB       bool
}

type summaryView struct {
	dashboard.Summary
	OOB bool
}

type pageData struct {
	Title          string
	Areas          []areaOption
	Dependents     int
	MaxDependents  int
	DependentsText string
	Marks          []sliderMark
	Summary        summaryView
	Charts         []chartView
	About          template.HTML
	ExportsEnabled bool
}

type updateData struct {
	Charts  []chartView
	Summary *summaryView
}

func (s *Server) chartViews(figures []*charts.Figure, oob bool) []chartView {
	views := make([]chartView, 0, len(figures))
	for _, f := range figures {
		v := chartView{ID: f.ID, Title: f.Title, Option: f.Option(), OOB: oob}
		if s.exporter.Enabled() {
			v.ExportURL = "/exports/" + f.ID.ExportFile()
		}
		views = append(views, v)
	}
	return views
}

func (s *Server) pageData(view dashboard.View) pageData {
	selected := make(map[string]bool, len(view.State.Areas))
	for _, a := range view.State.Areas {
		selected[a] = true
	}

	options := s.dash.ViewModel().AreaOptions()
	areas := make([]areaOption, 0, len(options))
	for _, o := range options {
		areas = append(areas, areaOption{Value: o, Selected: selected[o]})
	}

	positions := loan.DependentsOptions()
	marks := make([]sliderMark, 0, len(positions))
	for _, n := range positions {
		marks = append(marks, sliderMark{Value: n, Label: loan.DependentsLabel(n)})
	}

	return pageData{
		Title:          "Loan Approval Dashboard",
		Areas:          areas,
		Dependents:     view.State.Dependents,
		MaxDependents:  loan.MaxDependents,
		DependentsText: view.State.DependentsLabel(),
		Marks:          marks,
		Summary:        summaryView{Summary: view.Summary},
		Charts:         s.chartViews(view.Figures, false),
		About:          s.about,
		ExportsEnabled: s.exporter.Enabled(),
	}
}

package ui

import (
	"log"
	"net/http"

	"loandash/internal/charts"
	"loandash/internal/dashboard"
	"loandash/internal/errors"

	"github.com/gin-gonic/gin"
)

// formFields maps each control to the form field carrying its value
var formFields = map[dashboard.ControlID]string{
	dashboard.ControlArea:       "areas",
	dashboard.ControlDependents: "dependents",
}

// handleIndex serves the full dashboard at the session's current state
func (s *Server) handleIndex(c *gin.Context) {
	sess := s.session(c)
	s.renderTemplate(c, "index.html", s.pageData(sess.Render()))
}

// handleControl applies a control change and returns out-of-band fragments
// for the charts that depend on it
func (s *Server) handleControl(c *gin.Context) {
	control, ok := dashboard.ParseControl(c.Param("control"))
	if !ok {
		s.respondError(c, errors.NotFound("control "+c.Param("control")))
		return
	}

	sess := s.session(c)
	update, err := sess.Apply(control, c.PostFormArray(formFields[control]))
	if err != nil {
		s.respondError(c, err)
		return
	}

	data := updateData{Charts: s.chartViews(update.Figures, true)}
	if update.Summary != nil {
		data.Summary = &summaryView{Summary: *update.Summary, OOB: true}
	}
	s.renderTemplate(c, "update", data)
}

// handleChart returns the fragment of one chart
func (s *Server) handleChart(c *gin.Context) {
	fig, err := s.buildChart(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.renderTemplate(c, "chart", s.chartViews([]*charts.Figure{fig}, false)[0])
}

// handleStandalone returns one chart as a self-contained HTML page
func (s *Server) handleStandalone(c *gin.Context) {
	fig, err := s.buildChart(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	page, err := fig.HTML()
	if err != nil {
		s.respondError(c, errors.Wrap(err, "render chart"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": s.dash.ViewModel().Dataset().Len(),
	})
}

func (s *Server) buildChart(c *gin.Context) (*charts.Figure, error) {
	id, ok := charts.Parse(c.Param("chart"))
	if !ok {
		return nil, errors.NotFound("chart " + c.Param("chart"))
	}
	return s.session(c).Build(id)
}

// respondError writes err as JSON with the status its code maps to
func (s *Server) respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[Server] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

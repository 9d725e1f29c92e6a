package ui

import (
	"net/http"
	"path/filepath"

	"loandash/internal/charts"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// exportsHandler serves the latest exported chart files read-only. Only the
// known export file names are reachable.
func (s *Server) exportsHandler() http.Handler {
	allowed := make(map[string]bool)
	for _, name := range charts.ExportFiles() {
		allowed[name] = true
	}

	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Get("/{file}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "file")
		if !allowed[name] {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.exporter.Dir(), name))
	})

	return http.StripPrefix("/exports", r)
}

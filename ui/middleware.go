package ui

import (
	"io/fs"
	"log"
	"net/http"

	"loandash/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(s.files, "static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
		return
	}
	log.Printf("[Static] Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}

// sessionCookie names the cookie that carries the session id
const sessionCookie = "loan_session"

// session returns the caller's dashboard session, starting one when needed
func (s *Server) session(c *gin.Context) *dashboard.Session {
	id, _ := c.Cookie(sessionCookie)
	sess, created := s.sessions.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

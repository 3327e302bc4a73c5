package rest

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML pages and loose static assets
type PageHandler struct {
	staticDir string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// MessageForm handles GET /message
func (h *PageHandler) MessageForm(c *gin.Context) {
	c.HTML(http.StatusOK, "message.html", nil)
}

// NotFound handles every unmatched route. Unmatched GETs first fall back to a
// static file lookup, so assets referenced by absolute path (e.g. /style.css)
// resolve; anything else gets the error page.
func (h *PageHandler) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		// Clean with a leading slash keeps the lookup inside staticDir.
		rel := filepath.Clean("/" + c.Request.URL.Path)
		path := filepath.Join(h.staticDir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
	}

	c.HTML(http.StatusNotFound, "error.html", nil)
}

package ui

import (
	"bytes"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"launchdash/internal/dashboard"
	"launchdash/internal/errors"

	"github.com/gin-gonic/gin"
)

type indexView struct {
	Page   dashboard.Page
	Config string
}

// handleIndex renders the dashboard page
func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", indexView{Page: s.dash.Page(), Config: s.pageConfig})
}

// renderTemplate writes nothing until the template has fully executed
func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.respondError(c, errors.InternalError("failed to render "+name+": "+err.Error()))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleLayout returns the page description with its bindings and default control state
func (s *Server) handleLayout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     s.dash.Page(),
		"bindings": s.dash.Bindings(),
		"defaults": s.dash.DefaultState(),
	})
}

// handleCallback re-renders one output from the posted control state.
// Controls missing from the body keep their default values.
func (s *Server) handleCallback(c *gin.Context) {
	state := s.dash.DefaultState()
	if err := c.ShouldBindJSON(&state); err != nil && !stderrors.Is(err, io.EOF) {
		s.respondError(c, errors.Wrap(errors.InvalidInput(err.Error()), "invalid control state"))
		return
	}

	figure, err := s.dash.Dispatch(c.Param("output"), state)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, figure)
}

// handleSummary returns per-site launch summaries
func (s *Server) handleSummary(c *gin.Context) {
	confidence := s.confidence
	if raw := c.Query("confidence"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.respondError(c, errors.InvalidInput("confidence must be a number"))
			return
		}
		confidence = v
	}

	summaries, err := dashboard.Summarize(s.dash.Table(), confidence)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"confidence": confidence,
		"sites":      summaries,
	})
}

func (s *Server) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": code})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/loktar00/graphiti-state/internal/status"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// handleStatus returns the Graphiti integration status derived from the
// process environment
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, status.Summarize(s.graphiti))
}

// handleState returns the state marker of the configured working directory
func (s *Server) handleState(c *gin.Context) {
	st, err := s.store.Load(c.Request.Context(), s.graphiti.StateDir)
	if err != nil {
		s.logger.Error("failed to load state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    "STORAGE_ERROR",
				Message: "Failed to load state marker",
				Details: err.Error(),
			},
		})
		return
	}

	if st == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "State marker not found",
			},
		})
		return
	}

	s.metrics.ObserveState(st)
	c.JSON(http.StatusOK, st)
}

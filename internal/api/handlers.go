package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"m365_collector/internal/domain"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 200
)

func NewHandler(status StatusReader) *Handler {
	return &Handler{status: status}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ListRuns(c *gin.Context) {
	limit := defaultRunsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.status.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "list_runs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *Handler) LatestStatus(c *gin.Context) {
	status, err := h.status.LatestStatus(c.Request.Context())
	if err != nil {
		h.fail(c, "latest_status", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *Handler) GetRun(c *gin.Context) {
	runID, ok := runIDParam(c)
	if !ok {
		return
	}

	run, err := h.status.GetRun(c.Request.Context(), runID)
	if err != nil {
		h.fail(c, "get_run", err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *Handler) GetStatus(c *gin.Context) {
	runID, ok := runIDParam(c)
	if !ok {
		return
	}

	status, err := h.status.GetStatus(c.Request.Context(), runID)
	if err != nil {
		h.fail(c, "get_status", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *Handler) GetCheckpoint(c *gin.Context) {
	runID, ok := runIDParam(c)
	if !ok {
		return
	}

	checkpoint, err := h.status.Checkpoint(c.Request.Context(), runID)
	if err != nil {
		h.fail(c, "get_checkpoint", err)
		return
	}
	if checkpoint == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no checkpoint recorded"})
		return
	}
	c.JSON(http.StatusOK, checkpoint)
}

func (h *Handler) GetRetries(c *gin.Context) {
	runID, ok := runIDParam(c)
	if !ok {
		return
	}

	retries, err := h.status.Retries(c.Request.Context(), runID)
	if err != nil {
		h.fail(c, "get_retries", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"retries": retries})
}

func runIDParam(c *gin.Context) (int64, bool) {
	runID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || runID <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid run id"})
		return 0, false
	}
	return runID, true
}

func (h *Handler) fail(c *gin.Context, operation string, err error) {
	if errors.Is(err, domain.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	slog.Error("Database error", "operation", operation, "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

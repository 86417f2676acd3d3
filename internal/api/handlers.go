package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/tracker"
	"github.com/jobdeck/jobdeck/pkg/types"
)

// maxImportSize bounds an uploaded table blob. The store holds one user's
// applications; anything past this is not a legitimate backup.
const maxImportSize = 16 << 20

// Handler translates HTTP requests into lifecycle service calls.
type Handler struct {
	service *tracker.Service
}

// NewHandler returns a Handler for the given service.
func NewHandler(service *tracker.Service) *Handler {
	return &Handler{service: service}
}

// ingestRequest is the bulk ingestion payload.
type ingestRequest struct {
	Entries []string `json:"entries"`
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ListApplications returns the filtered record list. Query parameters:
// status, priority, q (substring search), from, to (RFC 3339 dates,
// inclusive).
func (h *Handler) ListApplications(c *gin.Context) {
	filter := types.Filter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("q"),
	}

	var err error
	if filter.From, err = parseDateParam(c.Query("from")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date"})
		return
	}
	if filter.To, err = parseDateParam(c.Query("to")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date"})
		return
	}

	records, err := h.service.List(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// IngestLinks creates records from a pasted batch of links.
func (h *Handler) IngestLinks(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.IngestLinks(req.Entries)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateApplication applies a partial update to one record.
func (h *Handler) UpdateApplication(c *gin.Context) {
	var patch types.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.Update(c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ArchiveApplication soft-deletes one record.
func (h *Handler) ArchiveApplication(c *gin.Context) {
	updated, err := h.service.Archive(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ClearLink removes the URL and link title from one record.
func (h *Handler) ClearLink(c *gin.Context) {
	updated, err := h.service.ClearLink(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteApplication removes one record permanently.
func (h *Handler) DeleteApplication(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats returns aggregate counts. This endpoint never errors outward.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

// Export downloads the raw table blob for backup.
func (h *Handler) Export(c *gin.Context) {
	data, err := h.service.Export()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="applications.table"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Import restores the store from an uploaded table blob. Accepts either a
// raw body or a multipart upload under the "file" field.
func (h *Handler) Import(c *gin.Context) {
	data, err := readImportBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	records, err := h.service.Restore(data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// readImportBody extracts upload bytes from a multipart form or raw body.
func readImportBody(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImportSize))
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
}

// parseDateParam parses an optional RFC 3339 timestamp or plain date.
func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// writeError maps the error taxonomy onto status codes: not-found to 404,
// rejected input to 400, persistence failures to 500 with a retry hint.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrDuplicateURL),
		errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrInvalidRestore):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"hint":  "the change was not persisted; retry the request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pantrycore/internal/export"
	"pantrycore/pkg/domain"
)

// maxImportBytes caps import payloads well above any realistic bundle.
const maxImportBytes = 1 << 20

func (s *Server) handleExportText(c *gin.Context) {
	groups, err := s.service.CartByCategory(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", export.RenderTextList(groups, s.nowFn().In(s.loc)))
}

func (s *Server) handleExportBackup(c *gin.Context) {
	bundle, err := s.service.ExportBundle(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	payload, err := export.RenderBackup(bundle)
	if err != nil {
		renderError(c, err)
		return
	}

	filename := fmt.Sprintf("grocery_backup_%s.json", export.Stamp(s.nowFn().In(s.loc)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

func (s *Server) handleImport(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "import payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "read request body: " + err.Error()})
		return
	}

	mode := domain.ImportMode(c.Query("mode"))
	summary, res, err := s.service.Import(c.Request.Context(), payload, mode)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"summary": summary}, res)
}

type exportRequestPayload struct {
	Format string `json:"format" binding:"required"`
}

func (s *Server) handleExportEnqueue(c *gin.Context) {
	if s.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export worker unavailable"})
		return
	}

	var payload exportRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	format, err := export.ParseFormat(payload.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.exports.Enqueue(c.Request.Context(), format)
	if err != nil {
		if errors.Is(err, export.ErrQueueFull) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		renderError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, record)
}

func (s *Server) handleExportIndex(c *gin.Context) {
	if s.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export worker unavailable"})
		return
	}
	records := s.exports.List()
	if records == nil {
		records = []export.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"exports": records})
}

func (s *Server) handleExportGet(c *gin.Context) {
	if s.exports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export worker unavailable"})
		return
	}
	record, ok := s.exports.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "export not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

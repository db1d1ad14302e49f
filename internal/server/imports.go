package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harborline/seaquote/internal/importer"
)

func (s *Server) ImportRates(c *gin.Context) {
	s.runImport(c, s.importerSvc.ImportRates)
}

func (s *Server) ImportSchedules(c *gin.Context) {
	s.runImport(c, s.importerSvc.ImportSchedules)
}

func (s *Server) runImport(c *gin.Context, doImport func(context.Context, string) (*importer.Summary, error)) {
	file, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, newValidationError("file", "invalid_file", "file is required"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		AbortWithError(c, newValidationError("file", "invalid_file", "only .xlsx files are supported"))
		return
	}

	tmp, err := os.CreateTemp("", "seaquote-import-*.xlsx")
	if err != nil {
		AbortWithError(c, err)
		return
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		AbortWithError(c, err)
		return
	}

	summary, err := doImport(c.Request.Context(), filepath.Clean(tmpPath))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, summary)
}

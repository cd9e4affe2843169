package echo

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/fwojciec/profscrape"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleResume(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return profscrape.Errorf(profscrape.EINVALID, "a PDF file is required in form field %q", "file")
	}
	if fh.Size > MaxResumeSize {
		return profscrape.Errorf(profscrape.EINVALID, "file exceeds %d MiB", MaxResumeSize>>20)
	}
	if !isPDF(fh.Filename, fh.Header.Get(echo.HeaderContentType)) {
		return profscrape.Errorf(profscrape.EINVALID, "please upload a PDF file")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	resume, err := s.resumes.ParseResume(c.Request().Context(), f, fh.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resume)
}

func isPDF(filename, contentType string) bool {
	if strings.HasPrefix(contentType, "application/pdf") {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

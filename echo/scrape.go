package echo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/profscrape"
	"github.com/labstack/echo/v4"
)

type scrapeRequest struct {
	URL string `json:"url" validate:"required"`
}

func (s *Server) handleScrape(c echo.Context) error {
	var req scrapeRequest
	if err := c.Bind(&req); err != nil {
		return profscrape.Errorf(profscrape.EINVALID, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return profscrape.Errorf(profscrape.EINVALID, "profile URL is required")
	}
	if _, err := profscrape.ProfileID(req.URL); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.scrapeTimeout)
	defer cancel()

	profile, err := s.scraper.Scrape(ctx, req.URL)
	if err != nil {
		return err
	}

	body, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	// Identical content yields an identical tag, so clients can detect
	// that a repeated scrape returned nothing new.
	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Response().Header().Set(headerETag, etag)
	if c.Request().Header.Get(headerIfNoneMatch) == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSONBlob(http.StatusOK, body)
}

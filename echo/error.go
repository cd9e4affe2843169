package echo

import (
	"errors"
	"net/http"

	"github.com/fwojciec/profscrape"
	"github.com/labstack/echo/v4"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

var codes = map[string]int{
	profscrape.EINVALID:     http.StatusBadRequest,
	profscrape.ENOTFOUND:    http.StatusNotFound,
	profscrape.EUNREACHABLE: http.StatusNotFound,
	profscrape.ENOCONTENT:   http.StatusNotFound,
	profscrape.ESESSION:     http.StatusServiceUnavailable,
	profscrape.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// handleError writes err as a JSON error body. Internal errors are logged
// and replaced by a generic message.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := s.errorBody(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"requestID", c.Response().Header().Get(echo.HeaderXRequestID),
			"err", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		s.logger.Error("failed to write error response", "err", err)
	}
}

func (s *Server) errorBody(err error) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		code := profscrape.EINTERNAL
		if he.Code < http.StatusInternalServerError {
			code = profscrape.EINVALID
		}
		if he.Code == http.StatusNotFound {
			code = profscrape.ENOTFOUND
		}
		return he.Code, errorResponse{Code: code, Error: msg}
	}

	code := profscrape.ErrorCode(err)
	msg := profscrape.ErrorMessage(err)
	if code == profscrape.EINTERNAL {
		msg = "Internal error."
	}
	return ErrorStatusCode(code), errorResponse{Code: code, Error: msg}
}

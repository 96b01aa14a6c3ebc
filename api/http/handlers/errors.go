package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/py2k5/resume-analyzer/api/http/presenter"
	"github.com/py2k5/resume-analyzer/pkg/ocr"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeMissingFile       = "missing_file"
	CodeInvalidRequest    = "invalid_request"
	CodeUnsupportedFormat = "unsupported_format"
	CodeSizeExceeded      = "size_exceeded"
	CodeNoText            = "no_text"
	CodeThrottled         = "throttled"
	CodeAccessDenied      = "access_denied"
	CodeUnavailable       = "ocr_unavailable"
	CodeInternal          = "internal_error"
	CodeNotFound          = "not_found"
	CodeMethodNotAllowed  = "method_not_allowed"
)

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{ocr.ErrUnsupportedFormat, http.StatusBadRequest, CodeUnsupportedFormat},
	{ocr.ErrSizeExceeded, http.StatusRequestEntityTooLarge, CodeSizeExceeded},
	{ocr.ErrNoText, http.StatusUnprocessableEntity, CodeNoText},
	{ocr.ErrThrottled, http.StatusTooManyRequests, CodeThrottled},
	{ocr.ErrAccessDenied, http.StatusBadGateway, CodeAccessDenied},
	{ocr.ErrUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
}

// writeError maps extraction failures to a status code. Unknown errors are
// logged and reported as 500 without details.
func writeError(c *fiber.Ctx, err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return presenter.Error(c, e.status, e.code, err.Error())
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return presenter.Error(c, http.StatusServiceUnavailable, CodeUnavailable, "request canceled")
	}
	log.Printf("request %v failed: %v", c.Locals("requestid"), err)
	return presenter.Error(c, http.StatusInternalServerError, CodeInternal, "analysis failed")
}

// ErrorHandler is the fiber.Config error handler: errors raised by fiber
// itself (unknown route, body limit, recovered panic) get the same JSON body
// as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		log.Printf("request %v failed: %v", c.Locals("requestid"), err)
		return presenter.Error(c, http.StatusInternalServerError, CodeInternal, "internal error")
	}
	code := CodeInvalidRequest
	switch {
	case fe.Code == http.StatusNotFound:
		code = CodeNotFound
	case fe.Code == http.StatusMethodNotAllowed:
		code = CodeMethodNotAllowed
	case fe.Code == http.StatusRequestEntityTooLarge:
		code = CodeSizeExceeded
	case fe.Code >= http.StatusInternalServerError:
		code = CodeInternal
	}
	return presenter.Error(c, fe.Code, code, fe.Message)
}

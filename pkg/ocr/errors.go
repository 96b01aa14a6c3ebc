package ocr

import "errors"

// Failures of the text-extraction boundary. Callers match them with errors.Is;
// the HTTP layer maps each one to a status code.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrAccessDenied      = errors.New("access to document content denied")
	ErrThrottled         = errors.New("text extraction is busy, retry later")
	ErrSizeExceeded      = errors.New("document exceeds size limit")
	ErrNoText            = errors.New("no text found in document")
	ErrUnavailable       = errors.New("text extraction service unavailable")
)

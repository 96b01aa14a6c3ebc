package checkers

import (
	"context"
	"time"
)

// Availability is implemented by ocr.Client.
type Availability interface {
	Available(ctx context.Context) error
}

type OCRChecker struct {
	client  Availability
	timeout time.Duration
}

func NewOCRChecker(client Availability) *OCRChecker {
	return &OCRChecker{client: client, timeout: time.Second}
}

func (c *OCRChecker) Name() string { return "ocr" }

func (c *OCRChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Available(ctx)
}

package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// Config bounds the work a Client accepts.
type Config struct {
	// MaxBytes caps the upload size and the inflated DOCX body; zero disables.
	MaxBytes int64
	// MaxConcurrent is the number of image recognitions allowed at once.
	MaxConcurrent int64
	// Timeout bounds a single recognition.
	Timeout time.Duration
	// QueueTimeout is how long a request waits for a free recognition slot
	// before failing with ErrThrottled.
	QueueTimeout time.Duration
}

// Client routes documents to the extractor for their format: PDF text layer,
// DOCX body, or an OCR Engine for images. Construct it once and share it.
type Client struct {
	engine Engine
	cfg    Config
	slots  *semaphore.Weighted
}

// NewClient wires an engine into a client. A nil engine disables image
// support; those requests fail with ErrUnavailable.
func NewClient(engine Engine, cfg Config) *Client {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &Client{
		engine: engine,
		cfg:    cfg,
		slots:  semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// Extract returns the text of the document named filename.
func (c *Client) Extract(ctx context.Context, filename string, data []byte) (Document, error) {
	if c.cfg.MaxBytes > 0 && int64(len(data)) > c.cfg.MaxBytes {
		return Document{}, fmt.Errorf("%w: %d bytes, limit %d", ErrSizeExceeded, len(data), c.cfg.MaxBytes)
	}
	format, err := Detect(filename, data)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	switch format {
	case FormatPDF:
		text, pages, err := extractPDF(data)
		if err != nil {
			return Document{}, err
		}
		doc = Document{Text: text, Info: Info{Pages: pages}, Method: "pdf-text"}
	case FormatDOCX:
		text, err := extractDOCX(data, c.cfg.MaxBytes)
		if err != nil {
			return Document{}, err
		}
		doc = Document{Text: text, Method: "docx-xml"}
	default:
		doc, err = c.recognize(ctx, Image{Data: data, Format: format})
		if err != nil {
			return Document{}, err
		}
	}

	doc.Text = strings.TrimSpace(doc.Text)
	if doc.Text == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrNoText, filename)
	}
	doc.Info.Format = format
	if doc.Info.Lines == 0 {
		doc.Info.Lines = countLines(doc.Text)
	}
	if doc.Info.Words == 0 {
		doc.Info.Words = len(strings.Fields(doc.Text))
	}
	return doc, nil
}

type recognized struct {
	rec Recognition
	err error
}

func (c *Client) recognize(ctx context.Context, img Image) (Document, error) {
	if c.engine == nil {
		return Document{}, fmt.Errorf("%w: no ocr engine configured", ErrUnavailable)
	}
	width, height, err := imageSize(img.Data)
	if err != nil {
		return Document{}, err
	}

	if err := c.acquire(ctx); err != nil {
		return Document{}, err
	}
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	// The slot stays taken until the engine returns, even when ctx ends first:
	// engines such as tesseract keep running after the caller gives up.
	done := make(chan recognized, 1)
	go func() {
		defer c.slots.Release(1)
		rec, err := c.engine.Recognize(ctx, img)
		done <- recognized{rec: rec, err: err}
	}()

	var out recognized
	select {
	case out = <-done:
	case <-ctx.Done():
		out.err = ctx.Err()
	}
	if out.err != nil {
		if errors.Is(out.err, context.DeadlineExceeded) {
			return Document{}, fmt.Errorf("%w: recognition timed out", ErrUnavailable)
		}
		return Document{}, fmt.Errorf("%s: %w", c.engine.Name(), out.err)
	}
	rec := out.rec
	return Document{
		Text: rec.Text,
		Info: Info{
			Pages:      1,
			Lines:      rec.Lines,
			Words:      len(rec.WordConfidences),
			Width:      width,
			Height:     height,
			Confidence: confidenceOf(rec.WordConfidences),
		},
		Method: "ocr:" + c.engine.Name(),
	}, nil
}

// acquire waits up to QueueTimeout for a recognition slot.
func (c *Client) acquire(ctx context.Context) error {
	wait := ctx
	if c.cfg.QueueTimeout > 0 {
		var cancel context.CancelFunc
		wait, cancel = context.WithTimeout(ctx, c.cfg.QueueTimeout)
		defer cancel()
	}
	if err := c.slots.Acquire(wait, 1); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %d recognitions in flight", ErrThrottled, c.cfg.MaxConcurrent)
	}
	return nil
}

// Available reports whether image recognition can be served. PDF and DOCX
// extraction need no external service.
func (c *Client) Available(ctx context.Context) error {
	if c.engine == nil {
		return fmt.Errorf("%w: no ocr engine configured", ErrUnavailable)
	}
	if err := c.engine.Available(ctx); err != nil {
		return fmt.Errorf("%s: %w", c.engine.Name(), err)
	}
	return nil
}

// EngineName is the configured engine name, or "none".
func (c *Client) EngineName() string {
	if c.engine == nil {
		return "none"
	}
	return c.engine.Name()
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

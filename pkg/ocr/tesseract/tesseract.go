package tesseract

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/py2k5/resume-analyzer/pkg/ocr"
)

// Engine implements ocr.Engine with the gosseract client. Every call gets its
// own client, so the engine itself is safe for concurrent use.
type Engine struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract-backed engine for the given languages ("eng"
// when none are given).
func New(languages ...string) *Engine {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Engine{languages: languages, clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize blocks until tesseract finishes. gosseract cannot be interrupted,
// so ctx is only checked before the work starts; ocr.Client enforces the
// timeout and keeps the recognition slot until this call returns.
func (e *Engine) Recognize(ctx context.Context, img ocr.Image) (ocr.Recognition, error) {
	if err := ctx.Err(); err != nil {
		return ocr.Recognition{}, err
	}
	c := e.clientFactory()
	defer c.Close()
	return e.recognizeWithClient(c, img)
}

func (e *Engine) recognizeWithClient(c *gosseract.Client, img ocr.Image) (ocr.Recognition, error) {
	if err := c.SetLanguage(e.languages...); err != nil {
		return ocr.Recognition{}, fmt.Errorf("%w: set languages: %v", ocr.ErrUnavailable, err)
	}
	if err := c.SetImageFromBytes(img.Data); err != nil {
		return ocr.Recognition{}, fmt.Errorf("%w: set image: %v", ocr.ErrUnsupportedFormat, err)
	}
	text, err := c.Text()
	if err != nil {
		return ocr.Recognition{}, fmt.Errorf("%w: recognize text: %v", ocr.ErrUnavailable, err)
	}

	rec := ocr.Recognition{Text: strings.TrimSpace(text)}
	if lines, err := c.GetBoundingBoxes(gosseract.RIL_TEXTLINE); err == nil {
		rec.Lines = len(lines)
	}
	if words, err := c.GetBoundingBoxes(gosseract.RIL_WORD); err == nil {
		rec.WordConfidences = make([]float64, 0, len(words))
		for _, w := range words {
			if strings.TrimSpace(w.Word) == "" || w.Confidence < 0 {
				continue
			}
			rec.WordConfidences = append(rec.WordConfidences, w.Confidence)
		}
	}
	return rec, nil
}

// Available checks that the library loads and every configured language has
// trained data installed.
func (e *Engine) Available(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if gosseract.Version() == "" {
		return fmt.Errorf("%w: tesseract library not loaded", ocr.ErrUnavailable)
	}
	installed, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("%w: list languages: %v", ocr.ErrUnavailable, err)
	}
	for _, lang := range e.languages {
		if !slices.Contains(installed, lang) {
			return fmt.Errorf("%w: language %q is not installed", ocr.ErrUnavailable, lang)
		}
	}
	return nil
}

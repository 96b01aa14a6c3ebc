package ocr

import (
	"context"
	"math"
)

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatTIFF Format = "tiff"
)

// IsImage reports whether documents of this format go through an Engine.
func (f Format) IsImage() bool {
	return f == FormatPNG || f == FormatJPEG || f == FormatTIFF
}

// Confidence summarizes per-word recognition confidence in percent (0-100).
type Confidence struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

// Info — сведения о документе, полученные при извлечении текста.
type Info struct {
	Format     Format      `json:"format"`
	Pages      int         `json:"pages,omitempty"`
	Lines      int         `json:"lines"`
	Words      int         `json:"words"`
	Width      int         `json:"width,omitempty"`
	Height     int         `json:"height,omitempty"`
	Confidence *Confidence `json:"confidence,omitempty"`
}

// Document is the text extracted from one upload.
type Document struct {
	Text   string
	Info   Info
	Method string
}

// Image is one encoded image handed to an Engine.
type Image struct {
	Data   []byte
	Format Format
}

// Recognition is what an Engine read from an image.
type Recognition struct {
	Text  string
	Lines int
	// WordConfidences holds one value per recognized word, in percent.
	WordConfidences []float64
}

// Engine recognizes text in images.
type Engine interface {
	Name() string
	// Recognize may keep running after ctx ends; Client counts the call
	// against its concurrency limit until it returns.
	Recognize(ctx context.Context, img Image) (Recognition, error)
	// Available returns nil when the engine can serve requests.
	Available(ctx context.Context) error
}

// confidenceOf returns nil when there are no scores.
func confidenceOf(scores []float64) *Confidence {
	if len(scores) == 0 {
		return nil
	}
	c := &Confidence{Min: math.MaxFloat64, Count: len(scores)}
	var sum float64
	for _, s := range scores {
		sum += s
		c.Min = math.Min(c.Min, s)
		c.Max = math.Max(c.Max, s)
	}
	c.Average = math.Round(sum/float64(len(scores))*100) / 100
	return c
}

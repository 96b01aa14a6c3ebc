package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/tiff"
)

var extensions = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

var signatures = map[Format][][]byte{
	FormatPDF:  {[]byte("%PDF-")},
	FormatDOCX: {[]byte("PK\x03\x04")},
	FormatPNG:  {[]byte("\x89PNG\r\n\x1a\n")},
	FormatJPEG: {[]byte("\xff\xd8\xff")},
	FormatTIFF: {[]byte("II*\x00"), []byte("MM\x00*")},
}

// Extensions lists the accepted file extensions, sorted.
func Extensions() []string {
	out := make([]string, 0, len(extensions))
	for ext := range extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// FormatFromName maps a file name to its format by extension.
func FormatFromName(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q, allowed: %s", ErrUnsupportedFormat, ext, strings.Join(Extensions(), ", "))
	}
	return f, nil
}

// Detect resolves the format from the extension and checks that the content
// starts with the matching signature.
func Detect(filename string, data []byte) (Format, error) {
	f, err := FormatFromName(filename)
	if err != nil {
		return "", err
	}
	for _, sig := range signatures[f] {
		if bytes.HasPrefix(data, sig) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: content of %q is not %s", ErrUnsupportedFormat, filename, f)
}

// imageSize decodes only the image header.
func imageSize(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return cfg.Width, cfg.Height, nil
}

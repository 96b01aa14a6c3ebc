package ocr

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

const docxBody = "word/document.xml"

var reTags = regexp.MustCompile(`<[^>]+>`)

// extractDOCX pulls paragraph text out of word/document.xml. Paragraph ends
// become newlines and tabs are kept so list layout survives.
func extractDOCX(data []byte, limit int64) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		docXML, err = readEntry(f, limit)
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: no %s in docx", ErrUnsupportedFormat, docxBody)
	}

	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	txt := reTags.ReplaceAllString(xml, "")
	return html.UnescapeString(txt), nil
}

// readEntry refuses entries that inflate past limit.
func readEntry(f *zip.File, limit int64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	defer rc.Close()
	if limit <= 0 {
		return io.ReadAll(rc)
	}
	b, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if int64(len(b)) > limit {
		return nil, errors.Join(ErrSizeExceeded, fmt.Errorf("%s inflates past %d bytes", docxBody, limit))
	}
	return b, nil
}

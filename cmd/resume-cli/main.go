// Command resume-cli analyzes one resume file or text and prints the JSON
// report served by the HTTP API.
//
//	resume-cli -file resume.pdf
//	resume-cli -text "Skills: Go, Docker"
//	cat resume.txt | resume-cli -pretty
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/py2k5/resume-analyzer/pkg/certification"
	"github.com/py2k5/resume-analyzer/pkg/config"
	"github.com/py2k5/resume-analyzer/pkg/ocr"
	"github.com/py2k5/resume-analyzer/pkg/ocr/tesseract"
	"github.com/py2k5/resume-analyzer/pkg/resume"
	"github.com/py2k5/resume-analyzer/pkg/skill"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

func main() {
	var (
		file   = flag.String("file", "", "resume file (.pdf .docx .png .jpg .jpeg .tif .tiff)")
		text   = flag.String("text", "", "resume text; stdin is read when neither -file nor -text is set")
		pretty = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()
	log.SetFlags(0)

	cfg := config.Load()
	svc, err := newService(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	var analysis resume.Analysis
	switch {
	case *file != "":
		data, err := readFile(*file, cfg.MaxUploadBytes)
		if err != nil {
			log.Fatal(err)
		}
		analysis, err = svc.Analyze(ctx, filepath.Base(*file), data)
		if err != nil {
			log.Fatal(err)
		}
	default:
		input := *text
		if input == "" {
			b, err := readInput(os.Stdin, cfg.MaxUploadBytes)
			if err != nil {
				log.Fatalf("read stdin: %v", err)
			}
			input = string(b)
		}
		analysis, err = svc.AnalyzeText(ctx, input)
		if err != nil {
			log.Fatal(err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(analysis); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func newService(cfg config.Config) (resume.AnalysisService, error) {
	set, err := taxonomy.Load(cfg.TaxonomyDir)
	if err != nil {
		return nil, fmt.Errorf("load taxonomies: %w", err)
	}
	skills, err := skill.NewService(set.Skills)
	if err != nil {
		return nil, err
	}
	certs, err := certification.NewService(set.Certifications)
	if err != nil {
		return nil, err
	}
	client := ocr.NewClient(tesseract.New(cfg.OCRLanguages...), ocr.Config{
		MaxBytes:      cfg.MaxUploadBytes,
		MaxConcurrent: 1,
		Timeout:       cfg.OCRTimeout,
	})
	return resume.NewAnalysisService(client, skills, certs), nil
}

func readFile(path string, max int64) ([]byte, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > max {
		return nil, fmt.Errorf("%s: %w: %d bytes, limit %d", path, ocr.ErrSizeExceeded, st.Size(), max)
	}
	return os.ReadFile(path)
}

// readInput reads r up to max bytes and fails instead of truncating.
func readInput(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", ocr.ErrSizeExceeded, max)
	}
	return b, nil
}

package resume

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2k5/resume-analyzer/pkg/certification"
	"github.com/py2k5/resume-analyzer/pkg/ocr"
	"github.com/py2k5/resume-analyzer/pkg/skill"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

type fakeExtractor struct {
	doc ocr.Document
	err error
}

func (f fakeExtractor) Extract(context.Context, string, []byte) (ocr.Document, error) {
	return f.doc, f.err
}

func newService(t *testing.T, ex TextExtractor) AnalysisService {
	t.Helper()
	set := taxonomy.MustDefault()
	skills, err := skill.NewService(set.Skills)
	require.NoError(t, err)
	certs, err := certification.NewService(set.Certifications)
	require.NoError(t, err)
	return NewAnalysisService(ex, skills, certs)
}

func TestAnalyze(t *testing.T) {
	ex := fakeExtractor{doc: ocr.Document{
		Text:   "Skills: Go, Docker\n\nCredentials:\nCKA 2022",
		Info:   ocr.Info{Format: ocr.FormatPNG, Pages: 1, Lines: 4, Words: 6},
		Method: "ocr:fake",
	}}
	svc := newService(t, ex)

	a, err := svc.Analyze(context.Background(), "cv.png", []byte("raw bytes"))
	require.NoError(t, err)

	assert.Equal(t, "cv.png", a.Filename)
	assert.Len(t, a.Checksum, 64)
	assert.Equal(t, "ocr:fake", a.ExtractionMethod)
	require.NotNil(t, a.DocumentInfo)
	assert.Equal(t, ocr.FormatPNG, a.DocumentInfo.Format)
	assert.Equal(t, len([]rune(ex.doc.Text)), a.ContentLength)

	assert.Equal(t, []string{"Go"}, a.Skills.Get("programming_languages"))
	assert.Equal(t, []string{"Kubernetes Certified Administrator"}, a.Certifications.Get("devops_certifications"))
	require.NotEmpty(t, a.CertificationDetails)
	assert.Equal(t, "2022", a.CertificationDetails[0].Date)
}

func TestAnalyzeWrapsExtractorErrors(t *testing.T) {
	svc := newService(t, fakeExtractor{err: ocr.ErrNoText})

	_, err := svc.Analyze(context.Background(), "blank.pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ocr.ErrNoText)
}

func TestAnalyzeWithoutExtractor(t *testing.T) {
	_, err := newService(t, nil).Analyze(context.Background(), "cv.pdf", nil)
	assert.Error(t, err)
}

func TestAnalyzeText(t *testing.T) {
	svc := newService(t, nil)

	a, err := svc.AnalyzeText(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, MethodText, a.ExtractionMethod)
	assert.Zero(t, a.ContentLength)
	assert.Nil(t, a.DocumentInfo)
	assert.Zero(t, a.SkillsSummary.TotalSkillsFound)
	assert.Zero(t, a.CertificationsSummary.TotalCertificationsFound)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, map[string]any{}, body["skills"])
	assert.Equal(t, map[string]any{}, body["certifications"])
	assert.Equal(t, []any{}, body["certification_details"])
	assert.NotContains(t, body, "document_info")
	assert.NotContains(t, body, "filename")
}

func TestAnalyzeTextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(t, nil).AnalyzeText(ctx, "Go")
	assert.True(t, errors.Is(err, context.Canceled))
}

type recordingSkills struct{ got []string }

func (r *recordingSkills) Extract(text string) skill.Result {
	r.got = append(r.got, text)
	return skill.Result{}
}

type recordingCerts struct{ got []string }

func (r *recordingCerts) Extract(text string) certification.Result {
	r.got = append(r.got, text)
	return certification.Result{}
}

func TestAnalyzeTextHandsNormalizedTextToUseCases(t *testing.T) {
	skills, certs := &recordingSkills{}, &recordingCerts{}
	svc := NewAnalysisService(nil, skills, certs)

	a, err := svc.AnalyzeText(context.Background(), "  Skills: Go  \r\n\r\nPMP\x00 ")
	require.NoError(t, err)

	want := "Skills: Go\n\nPMP"
	assert.Equal(t, []string{want}, skills.got)
	assert.Equal(t, []string{want}, certs.got)
	assert.Equal(t, len([]rune(want)), a.ContentLength)
}

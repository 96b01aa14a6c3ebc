package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReady(t *testing.T) {
	down := errors.New("down")
	svc := NewService(stubChecker{name: "ocr"}, stubChecker{name: "disk", err: down})

	results, err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.Equal(t, []CheckResult{
		{Name: "ocr", Status: "ok"},
		{Name: "disk", Status: "failed", Error: "down"},
	}, results)
}

func TestReadyWithoutCheckers(t *testing.T) {
	results, err := NewService().Ready(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) ([]CheckResult, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs every checker and joins the failures.
func (s *service) Ready(ctx context.Context) ([]CheckResult, error) {
	results := make([]CheckResult, 0, len(s.checkers))
	var errs []error
	for _, ch := range s.checkers {
		r := CheckResult{Name: ch.Name(), Status: "ok"}
		if err := ch.Check(ctx); err != nil {
			r.Status = "failed"
			r.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

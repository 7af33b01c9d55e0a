package usecase_test

import (
	"context"

	"study-outline-tracker/internal/model"
)

// mockLogger satisfies log.Logger without emitting output.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// countingParser wraps a parse func and counts invocations.
type countingParser struct {
	calls     int
	parseFunc func(content string) ([]model.Subject, error)
}

func (p *countingParser) Parse(content string) ([]model.Subject, error) {
	p.calls++
	return p.parseFunc(content)
}

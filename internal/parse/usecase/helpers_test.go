package usecase_test

import (
	"context"
	"testing"
	"time"

	"todo-me/internal/catalog"
	"todo-me/internal/parse"
	"todo-me/internal/parse/usecase"
	"todo-me/pkg/dateparse"
)

// mock logger

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Friday, January 23, 2026, 15:00 UTC
var testNow = time.Date(2026, 1, 23, 15, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T) parse.UseCase {
	t.Helper()
	dates, err := dateparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating date parser: %v", err)
	}
	return usecase.New(&mockLogger{}, dates, 0)
}

func newInput(text string, cat *catalog.Catalog) parse.Input {
	input := parse.Input{
		Text: text,
		Now:  testNow,
		Settings: parse.Settings{
			DateFormat:  dateparse.FormatMDY,
			StartOfWeek: time.Monday,
		},
	}
	if cat != nil {
		input.Projects = cat
		input.Tags = cat
	}
	return input
}

func mustParse(t *testing.T, uc parse.UseCase, input parse.Input) parse.Result {
	t.Helper()
	res, err := uc.Parse(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return res
}

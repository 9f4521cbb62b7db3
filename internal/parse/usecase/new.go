package usecase

import (
	"todo-me/pkg/dateparse"
	pkgLog "todo-me/pkg/log"
)

// DefaultMaxInputLength caps input size when no explicit limit is configured.
// Scanning cost is linear in input length, so the cap bounds worst-case work.
const DefaultMaxInputLength = 1000

type implUseCase struct {
	l        pkgLog.Logger
	dates    *dateparse.Parser
	maxInput int
}

// New creates a new parse UseCase instance. maxInput <= 0 selects
// DefaultMaxInputLength.
func New(l pkgLog.Logger, dates *dateparse.Parser, maxInput int) *implUseCase {
	if maxInput <= 0 {
		maxInput = DefaultMaxInputLength
	}
	return &implUseCase{
		l:        l,
		dates:    dates,
		maxInput: maxInput,
	}
}

package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidPolicy  = errors.New("invalid error policy")
	ErrBatchCancelled = errors.New("batch cancelled")
	ErrWriteOutput    = errors.New("write output failed")
)

// PackageError ties a failure to the package that caused it.
// Index is the zero-based position of the package in the batch.
type PackageError struct {
	Index int
	ID    string
	Code  string
	Err   error
}

func (e *PackageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("package #%d %s (%s): %v", e.Index+1, e.ID, e.Code, e.Err)
	}
	return fmt.Sprintf("package #%d (%s): %v", e.Index+1, e.Code, e.Err)
}

func (e *PackageError) Unwrap() error { return e.Err }

// BatchError aggregates the packages skipped during a run.
type BatchError struct {
	Total    int
	Failures []*PackageError
}

func (e *BatchError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("%d of %d packages failed: %s", len(e.Failures), e.Total, strings.Join(parts, "; "))
}

// Unwrap exposes every package failure to errors.Is/As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Package service turns raw workout packages into summary lines.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/fittrack/internal/domain/dispatch"
	"github.com/okian/fittrack/internal/domain/model"
	"github.com/okian/fittrack/internal/domain/summary"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/okian/fittrack/pkg/metrics"
)

// Error kinds reported to metrics.
const (
	kindUnknownType  = "unknown_workout_type"
	kindFieldCount   = "field_count_mismatch"
	kindInvalidField = "invalid_field"
	kindInternal     = "internal"
)

// Batch outcomes reported to metrics.
const (
	outcomeSucceeded = "succeeded"
	outcomePartial   = "partial"
	outcomeFailed    = "failed"
	outcomeCancelled = "cancelled"
)

const microsecondsPerMs = 1000

// Report describes a finished batch.
type Report struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// Service processes workout packages against a dispatch table.
type Service struct {
	mu sync.RWMutex

	table  *dispatch.Table
	policy ErrorPolicy
	logger logger.Logger

	processed int
	failed    int
	batches   int
}

// New constructs a Service with the default dispatch table and skip policy.
func New(opts ...Option) (*Service, error) {
	s := &Service{policy: PolicySkip}

	for _, opt := range opts {
		opt(s)
	}

	policy, err := ParsePolicy(string(s.policy))
	if err != nil {
		return nil, err
	}
	s.policy = policy
	if s.table == nil {
		t, err := dispatch.New()
		if err != nil {
			return nil, fmt.Errorf("build dispatch table: %w", err)
		}
		s.table = t
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s, nil
}

// Process validates one package, runs its calculator and returns the summary.
func (s *Service) Process(ctx context.Context, pkg model.Package) (summary.InfoMessage, error) {
	start := time.Now()

	calc, err := s.table.Lookup(pkg.Code, pkg.Values)
	if err != nil {
		s.countResult(false)
		metrics.RecordWorkoutError(errorKind(err))
		return summary.InfoMessage{}, err
	}

	info := summary.FromCalculator(calc)
	s.countResult(true)
	metrics.RecordWorkout(info.TrainingType, info.Distance, info.Calories)
	metrics.RecordCalculationLatency(float64(time.Since(start).Microseconds()) / microsecondsPerMs)

	s.logger.Debug(ctx, "workout calculated",
		logger.String("code", pkg.Code),
		logger.String("id", pkg.ID),
		logger.String("type", info.TrainingType),
		logger.Float64("distanceKm", info.Distance),
		logger.Float64("calories", info.Calories),
	)
	return info, nil
}

// Run processes pkgs in order and writes one summary line per success to w.
//
// Under PolicySkip every failing package is logged and the batch goes on; the
// failures are returned together as a *BatchError. Under PolicyAbort the first
// failure is returned as a *PackageError and later packages are not touched.
// A cancelled ctx stops the batch before the next package.
func (s *Service) Run(ctx context.Context, pkgs []model.Package, w io.Writer) (Report, error) {
	report := Report{RunID: uuid.NewString(), Total: len(pkgs)}
	log := s.logger.With(logger.String("runID", report.RunID))
	start := time.Now()

	log.Info(ctx, "batch started",
		logger.Int("packages", len(pkgs)),
		logger.String("policy", string(s.policy)),
	)

	var (
		failures []*PackageError
		runErr   error
		outcome  string
	)

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("%w after %d of %d packages: %w", ErrBatchCancelled, i, len(pkgs), err)
			outcome = outcomeCancelled
			break
		}

		info, err := s.Process(ctx, pkg)
		if err != nil {
			report.Failed++
			pe := &PackageError{Index: i, ID: pkg.ID, Code: pkg.Code, Err: err}
			if s.policy == PolicyAbort {
				log.Error(ctx, "package failed, aborting batch",
					logger.Int("index", i),
					logger.String("package", pkg.String()),
					logger.Error(err),
				)
				runErr = pe
				outcome = outcomeFailed
				break
			}
			log.Warn(ctx, "package failed, skipping",
				logger.Int("index", i),
				logger.String("package", pkg.String()),
				logger.Error(err),
			)
			failures = append(failures, pe)
			continue
		}

		if _, err := fmt.Fprintln(w, info.Message()); err != nil {
			runErr = fmt.Errorf("%w: %w", ErrWriteOutput, err)
			outcome = outcomeFailed
			break
		}
		report.Succeeded++
	}

	if runErr == nil {
		switch {
		case len(failures) == 0:
			outcome = outcomeSucceeded
		case report.Succeeded > 0:
			outcome = outcomePartial
		default:
			outcome = outcomeFailed
		}
		if len(failures) > 0 {
			runErr = &BatchError{Total: len(pkgs), Failures: failures}
		}
	}

	report.Duration = time.Since(start)
	s.mu.Lock()
	s.batches++
	s.mu.Unlock()
	metrics.RecordBatch(outcome, report.Total, report.Failed, float64(report.Duration.Microseconds())/microsecondsPerMs)

	log.Info(ctx, "batch finished",
		logger.String("outcome", outcome),
		logger.Int("succeeded", report.Succeeded),
		logger.Int("failed", report.Failed),
		logger.Duration("duration", report.Duration),
	)
	return report, runErr
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"processed": s.processed,
		"failed":    s.failed,
		"batches":   s.batches,
		"policy":    string(s.policy),
		"codes":     s.table.Codes(),
	}
}

func (s *Service) countResult(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.processed++
		return
	}
	s.failed++
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, dispatch.ErrUnknownWorkoutType):
		return kindUnknownType
	case errors.Is(err, dispatch.ErrFieldCountMismatch):
		return kindFieldCount
	case errors.Is(err, dispatch.ErrInvalidField):
		return kindInvalidField
	default:
		return kindInternal
	}
}

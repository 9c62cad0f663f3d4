package service

import (
	"fmt"
	"strings"

	"github.com/okian/fittrack/internal/domain/dispatch"
	"github.com/okian/fittrack/pkg/logger"
)

// ErrorPolicy decides how a batch reacts to a failing package.
type ErrorPolicy string

const (
	// PolicySkip logs the failure, continues and reports every failure at the end.
	PolicySkip ErrorPolicy = "skip"
	// PolicyAbort stops the batch at the first failure.
	PolicyAbort ErrorPolicy = "abort"
)

// ParsePolicy converts a configuration value into an ErrorPolicy.
func ParsePolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicySkip, PolicyAbort:
		return p, nil
	case "":
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("%w: %q (want skip or abort)", ErrInvalidPolicy, s)
	}
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTable replaces the default dispatch table.
func WithTable(t *dispatch.Table) Option {
	return func(s *Service) {
		if t != nil {
			s.table = t
		}
	}
}

// WithErrorPolicy sets the batch error policy.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

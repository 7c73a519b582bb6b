package event

import (
	"go.uber.org/zap"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/validation"
)

// Service validates events with the active validator. The validator is
// looked up on every call, so a prototype validator is never reused.
type Service struct {
	validator func() (validation.Validator, error)
	logger    *zap.Logger
}

// NewService creates a Service.
func NewService(validator func() (validation.Validator, error), logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		validator: validator,
		logger:    logger,
	}
}

// NewServiceFactory builds a Service from the container.
func NewServiceFactory(r beans.Resolver) (*Service, error) {
	logger, err := beans.Resolve[*zap.Logger](r)
	if err != nil {
		return nil, err
	}
	return NewService(beans.Lazy[validation.Validator](r), logger), nil
}

// Validate validates e and returns its report. The error is non-nil only
// when no validator is available or e is nil.
func (s *Service) Validate(e *Event) (*validation.Errors, error) {
	v, err := s.validator()
	if err != nil {
		return nil, err
	}

	errs, err := validation.ValidateObject(v, e, ObjectName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("event validated",
		zap.Int64("idx", e.Idx),
		zap.Bool("has_errors", errs.HasErrors()),
		zap.Int("error_count", errs.ErrorCount()),
	)

	return errs, nil
}

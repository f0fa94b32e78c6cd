package services

import (
	"github.com/pkg/errors"
)

var (
	ErrNoSkillsAvailable   = errors.New("no skills available")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// UpstreamError is returned when the job search provider fails, times out or sends an unusable payload.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return ErrUpstreamUnavailable.Error()
	}
	return ErrUpstreamUnavailable.Error() + ": " + e.Err.Error()
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

package numgrad

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPoint      = errors.New("numgrad: empty point")
	ErrDomain          = errors.New("numgrad: function is NaN at the point")
	ErrGradientFailure = errors.New("numgrad: gradient did not converge")
)

// DomainError reports that f is NaN at the unperturbed point.
type DomainError struct {
	Point []float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("numgrad: the gradient at %v is NaN", e.Point)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// GradientFailureError reports a coordinate for which no step size in
// MaxAttempts attempts produced an acceptable estimate.
type GradientFailureError struct {
	Index int
	Point []float64
}

func (e *GradientFailureError) Error() string {
	return fmt.Sprintf("numgrad: gradient failed at index %d of %v", e.Index, e.Point)
}

func (e *GradientFailureError) Unwrap() error {
	return ErrGradientFailure
}

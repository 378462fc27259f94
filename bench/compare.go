package bench

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

var ErrMismatch = errors.New("bench: gradients differ")

// MismatchError reports the first index at which two gradients differ.
// Index is -1 when the lengths differ.
type MismatchError struct {
	Index int
	Got   float64
	Want  float64
	Len   [2]int
}

func (e *MismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bench: gradient lengths differ: %d != %d", e.Len[0], e.Len[1])
	}
	return fmt.Sprintf("bench: gradients differ at index %d: %v != %v", e.Index, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// AllClose reports whether a and b agree element-wise within the absolute
// tolerance or the relative tolerance.
// The relative band is taken against max(|a[i]|, |b[i]|), not the minimum.
func AllClose(a, b []float64, absTol, relTol float64) error {
	if len(a) != len(b) {
		return &MismatchError{Index: -1, Len: [2]int{len(a), len(b)}}
	}
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], absTol, relTol) {
			return &MismatchError{Index: i, Got: a[i], Want: b[i], Len: [2]int{len(a), len(b)}}
		}
	}
	return nil
}

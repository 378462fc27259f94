package mathx

import (
	"golang.org/x/exp/constraints"
)

func CentralDifference[X constraints.Float](plusY, minusY, h X) X {
	return (plusY - minusY) / (2.0 * h)
}

func ForwardDifference[X constraints.Float](plusY, y, h X) X {
	return (plusY - y) / h
}

func BackwardDifference[X constraints.Float](y, minusY, h X) X {
	return (y - minusY) / h
}

func IsNaN[X constraints.Float](x X) bool {
	return x != x
}

// Abs leaves NaN as NaN.
func Abs[X constraints.Float](x X) X {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns NaN as soon as one of xs is NaN, like math.Max.
// It panics when xs is empty.
func Max[X constraints.Float](xs ...X) X {
	m := xs[0]
	for _, x := range xs {
		if IsNaN(x) {
			return x
		}
		if x > m {
			m = x
		}
	}
	return m
}

// Min returns NaN as soon as one of xs is NaN, like math.Min.
// It panics when xs is empty.
func Min[X constraints.Float](xs ...X) X {
	m := xs[0]
	for _, x := range xs {
		if IsNaN(x) {
			return x
		}
		if x < m {
			m = x
		}
	}
	return m
}

func MaxAbs[X constraints.Float](xs ...X) X {
	m := X(0.0)
	for _, x := range xs {
		a := Abs(x)
		if IsNaN(a) {
			return a
		}
		if a > m {
			m = a
		}
	}
	return m
}

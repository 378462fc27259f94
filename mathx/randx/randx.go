package randx

import (
	"math/rand/v2"

	omwrandx "github.com/sw965/omw/mathx/randx"
)

func NewRand() *rand.Rand {
	return omwrandx.NewPCGFromGlobalSeed()
}

// IntPoint returns n coordinates drawn uniformly from {0, ..., max-1}.
func IntPoint(n, max int, rng *rand.Rand) []float64 {
	point := make([]float64, n)
	for i := range point {
		point[i] = float64(rng.IntN(max))
	}
	return point
}

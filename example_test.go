package numgrad_test

import (
	"fmt"

	"github.com/sw965/numgrad"
)

func ExampleGradient() {
	f := func(x []float64) float64 {
		return x[0]*x[0] + 3.0*x[1]
	}

	grad, err := numgrad.Gradient(f, []float64{1.0, 2.0})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", grad)
	// Output: [2.0000 3.0000]
}

func ExampleEstimator_Gradient() {
	f := func(x []float64) float64 {
		y := 0.0
		for i, xi := range x {
			y += float64(i+1) * xi * xi
		}
		return y
	}

	e := numgrad.Estimator{Parallel: 2}
	grad, err := e.Gradient(f, []float64{1.0, 1.0, 1.0, 1.0})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", grad)
	// Output: [2.0000 4.0000 6.0000 8.0000]
}

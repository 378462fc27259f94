package bench

import (
	"gonum.org/v1/gonum/floats"
)

// PullModel is a least-squares objective in which every parameter pulls
// two weighted sums towards CX and CY. Parameter i has weight (i+1)/n in
// the first sum and (n-i)/n in the second, where it enters as Offset-θ_i.
type PullModel struct {
	CX     float64
	CY     float64
	Offset float64
}

func NewPullModel() PullModel {
	return PullModel{CX: 30.5, CY: 42.5, Offset: 15.0}
}

func (m PullModel) sums(theta []float64) (float64, float64) {
	n := float64(len(theta))
	accX := 0.0
	accY := 0.0
	for i, v := range theta {
		accX += float64(i+1) / n * v
		accY += (n - float64(i)) / n * (m.Offset - v)
	}
	return accX, accY
}

func (m PullModel) Loss(theta []float64) float64 {
	accX, accY := m.sums(theta)
	dx := m.CX - accX
	dy := m.CY - accY
	return dx*dx + dy*dy
}

// Gradient is the closed-form gradient of Loss.
func (m PullModel) Gradient(theta []float64) []float64 {
	n := len(theta)
	fn := float64(n)
	baseX := make([]float64, n)
	baseY := make([]float64, n)
	for i := range theta {
		baseX[i] = float64(i+1) / fn
		baseY[i] = (fn - float64(i)) / fn
	}

	accX, accY := m.sums(theta)
	grad := make([]float64, n)
	floats.ScaleTo(grad, -2.0*(m.CX-accX), baseX)
	floats.AddScaled(grad, 2.0*(m.CY-accY), baseY)
	return grad
}

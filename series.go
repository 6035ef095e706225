package fourier

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series is a computed set of Fourier coefficients: the constant term A0
// plus cosine and sine coefficients for harmonic orders 1..Degree (An[i]
// and Bn[i] hold order i+1). A Series is immutable once computed.
type Series struct {
	A0     float64
	An     []float64
	Bn     []float64
	Period float64
}

// Degree returns the maximum harmonic order held by the series.
func (s *Series) Degree() int {
	return len(s.An)
}

// Evaluate returns the truncated series
// A0 + sum over n of An*cos(2*pi*n*x/P) + Bn*sin(2*pi*n*x/P)
// at the given point. The reconstruction is periodic in x by construction.
func (s *Series) Evaluate(x float64) float64 {
	return s.EvaluateDegree(x, s.Degree())
}

// EvaluateDegree evaluates the partial sum truncated at the given harmonic
// order, which must be at most Degree. This is what an animation of the
// approximation converging uses: one coefficient set computed at the final
// degree serves every intermediate frame.
func (s *Series) EvaluateDegree(x float64, degree int) float64 {
	if degree > s.Degree() {
		degree = s.Degree()
	}

	w := 2 * math.Pi * x / s.Period
	result := s.A0
	for n := 1; n <= degree; n++ {
		wn := w * float64(n)
		result += s.An[n-1]*math.Cos(wn) + s.Bn[n-1]*math.Sin(wn)
	}
	return result
}

// Sample evaluates the series at count evenly spaced points spanning
// [low, high], returning the abscissae and the series values. count must
// be at least 2.
func (s *Series) Sample(low, high float64, count int) (xs, ys []float64) {
	xs = floats.Span(make([]float64, count), low, high)
	ys = make([]float64, count)
	for i, x := range xs {
		ys[i] = s.Evaluate(x)
	}
	return xs, ys
}

// SampleDegree is Sample with the partial sum truncated at the given
// harmonic order.
func (s *Series) SampleDegree(low, high float64, count, degree int) (xs, ys []float64) {
	xs = floats.Span(make([]float64, count), low, high)
	ys = make([]float64, count)
	for i, x := range xs {
		ys[i] = s.EvaluateDegree(x, degree)
	}
	return xs, ys
}

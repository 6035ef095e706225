// Package quadrature provides adaptive numerical estimation of definite
// integrals, built on fixed-order Gauss-Legendre panels. The interval is
// split worst-panel-first until the summed error estimate meets the
// requested tolerance, which localises effort around oscillations, kinks
// and jumps in the integrand.
package quadrature

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrNotConverged is returned when the refinement budget is exhausted
// before the requested tolerance is met. The result is reported to the
// caller immediately and never retried internally.
var ErrNotConverged = errors.New("quadrature: integral did not converge within tolerance")

// Default integrator settings. Order 8 Gauss-Legendre is exact for
// polynomials up to degree 15, so piecewise-constant and piecewise-linear
// segments cost a single panel each.
const (
	DefaultAbsTol   = 1e-9
	DefaultOrder    = 8
	DefaultMaxDepth = 50
)

// maxPanels bounds the total number of panels per integral.
const maxPanels = 1 << 14

// Params configures an Integrator. Zero values select the defaults above.
type Params struct {
	AbsTol   float64 `yaml:"AbsTol"`   // absolute tolerance for the whole interval
	Order    int     `yaml:"Order"`    // Gauss-Legendre nodes per panel
	MaxDepth int     `yaml:"MaxDepth"` // maximum number of bisections of any one panel
}

// Integrator estimates definite integrals over finite intervals. The zero
// value is not usable; construct with New. An Integrator is stateless and
// safe for concurrent use.
type Integrator struct {
	absTol   float64
	order    int
	maxDepth int

	rule quad.Legendre
}

// New returns an Integrator with the requested parameters, checking for
// invalid values.
func New(params Params) (*Integrator, error) {
	in := &Integrator{rule: quad.Legendre{}}

	if err := in.setAbsTol(params.AbsTol); err != nil {
		return nil, err
	}
	if err := in.setOrder(params.Order); err != nil {
		return nil, err
	}
	if err := in.setMaxDepth(params.MaxDepth); err != nil {
		return nil, err
	}

	return in, nil
}

// Default returns an Integrator with all settings at their default values.
func Default() *Integrator {
	in, _ := New(Params{})
	return in
}

func (in *Integrator) setAbsTol(absTol float64) error {
	if absTol < 0 {
		return errors.New("AbsTol must be greater than or equal to 0")
	}
	if absTol == 0 {
		absTol = DefaultAbsTol
	}
	in.absTol = absTol
	return nil
}

func (in *Integrator) setOrder(order int) error {
	if order < 0 {
		return errors.New("Order must be greater than or equal to 0")
	}
	if order == 0 {
		order = DefaultOrder
	}
	in.order = order
	return nil
}

func (in *Integrator) setMaxDepth(maxDepth int) error {
	if maxDepth < 0 {
		return errors.New("MaxDepth must be greater than or equal to 0")
	}
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	in.maxDepth = maxDepth
	return nil
}

// AbsTol returns the absolute tolerance of the integrator.
func (in *Integrator) AbsTol() float64 {
	return in.absTol
}

// Order returns the number of Gauss-Legendre nodes per panel.
func (in *Integrator) Order() int {
	return in.order
}

// MaxDepth returns the per-panel bisection budget.
func (in *Integrator) MaxDepth() int {
	return in.maxDepth
}

// A panel covers [a, b] with a refined estimate and an error estimate
// taken as the difference between the order-n and order-2n rules.
type panel struct {
	a, b     float64
	estimate float64
	errEst   float64
	depth    int
}

// panelHeap is a max-heap ordered by error estimate.
type panelHeap []panel

func (h panelHeap) Len() int            { return len(h) }
func (h panelHeap) Less(i, j int) bool  { return h[i].errEst > h[j].errEst }
func (h panelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *panelHeap) Push(x interface{}) { *h = append(*h, x.(panel)) }
func (h *panelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// newPanel evaluates f on [a, b] at order n and order 2n. The higher-order
// value is kept as the estimate and the difference as the error estimate.
func (in *Integrator) newPanel(f func(float64) float64, a, b float64, depth int) panel {
	coarse := quad.Fixed(f, a, b, in.order, in.rule, 0)
	fine := quad.Fixed(f, a, b, 2*in.order, in.rule, 0)

	errEst := fine - coarse
	if errEst < 0 {
		errEst = -errEst
	}
	return panel{a: a, b: b, estimate: fine, errEst: errEst, depth: depth}
}

// Integrate estimates the definite integral of f over [a, b]. It returns
// ErrNotConverged if the refinement budget runs out before the tolerance
// is met, with the best estimate so far as the value.
func (in *Integrator) Integrate(f func(float64) float64, a, b float64) (float64, error) {
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := in.Integrate(f, b, a)
		return -v, err
	}

	h := panelHeap{in.newPanel(f, a, b, 0)}
	heap.Init(&h)

	for {
		total, totalErr := 0.0, 0.0
		for _, p := range h {
			total += p.estimate
			totalErr += p.errEst
		}
		if totalErr <= in.absTol {
			return total, nil
		}

		worst := heap.Pop(&h).(panel)
		if worst.depth >= in.maxDepth || len(h)+2 > maxPanels {
			return total, fmt.Errorf("%w: interval [%g, %g]", ErrNotConverged, worst.a, worst.b)
		}

		mid := worst.a + (worst.b-worst.a)/2
		heap.Push(&h, in.newPanel(f, worst.a, mid, worst.depth+1))
		heap.Push(&h, in.newPanel(f, mid, worst.b, worst.depth+1))
	}
}

// IntegrateSegments estimates the integral of f over [a, b], splitting the
// interval at the given breakpoints first. Breakpoints outside (a, b) are
// ignored. Splitting at known discontinuities leaves only smooth
// sub-intervals, which converge at full accuracy.
func (in *Integrator) IntegrateSegments(f func(float64) float64, a, b float64, breakpoints []float64) (float64, error) {
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := in.IntegrateSegments(f, b, a, breakpoints)
		return -v, err
	}

	pts := make([]float64, 0, len(breakpoints)+2)
	pts = append(pts, a)
	for _, p := range breakpoints {
		if p > a && p < b {
			pts = append(pts, p)
		}
	}
	pts = append(pts, b)
	sort.Float64s(pts)

	total := 0.0
	for i := 0; i < len(pts)-1; i++ {
		v, err := in.Integrate(f, pts[i], pts[i+1])
		total += v
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

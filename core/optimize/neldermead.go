// core/optimize/neldermead.go
package optimize

import (
	"fmt"

	gopt "gonum.org/v1/gonum/optimize"
)

// NelderMead minimizes the scalar objective with gonum's derivative-free
// simplex method. It is the default backend: binned Poisson statistics are
// cheap to evaluate and have no analytic gradient worth wiring.
type NelderMead struct {
	// MaxIterations bounds the major iterations; 0 means the backend's
	// own default.
	MaxIterations int
}

// Minimize runs the simplex search from o.Start().
func (n *NelderMead) Minimize(o Objective) (Result, error) {
	problem := gopt.Problem{Func: o.Eval}
	var settings *gopt.Settings
	if n.MaxIterations > 0 {
		settings = &gopt.Settings{MajorIterations: n.MaxIterations}
	}
	res, err := gopt.Minimize(problem, o.Start(), settings, &gopt.NelderMead{})
	if err != nil {
		return Result{}, fmt.Errorf("optimize: nelder-mead: %w", err)
	}
	x := append([]float64(nil), res.X...)
	return Result{X: x, Value: res.F}, nil
}

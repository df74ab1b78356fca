// core/optimize/levmar.go
package optimize

import (
	"fmt"

	"github.com/maorshutman/lm"
)

// LevMar minimizes the objective through its per-bin residual vector with
// the Levenberg-Marquardt method. It needs the residual (fvec) view of
// the statistic, so the driver must hand it saturated non-negative
// per-bin values.
type LevMar struct {
	// MaxIterations bounds the LM iterations; 0 uses a default of 200.
	MaxIterations int
}

// Minimize solves the least-squares problem from o.Start().
func (l *LevMar) Minimize(o Objective) (Result, error) {
	iters := l.MaxIterations
	if iters <= 0 {
		iters = 200
	}
	start := o.Start()
	fn := func(dst, x []float64) { o.Residuals(dst, x) }
	jac := lm.NumJac{Func: fn}
	problem := lm.LMProblem{
		Dim:        len(start),
		Size:       o.NResiduals(),
		Func:       fn,
		Jac:        jac.Jac,
		InitParams: start,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	res, err := lm.LM(problem, &lm.Settings{Iterations: iters, ObjectiveTol: 1e-16})
	if err != nil {
		return Result{}, fmt.Errorf("optimize: levmar: %w", err)
	}
	x := append([]float64(nil), res.X...)
	return Result{X: x, Value: o.Eval(x)}, nil
}

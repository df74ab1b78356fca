// core/optimize/optimizer.go
// Minimization backends behind one small strategy interface. The fit
// driver produces a deterministic scalar objective (and a per-bin
// residual view of it); everything about convergence, step sizing and
// termination belongs to the backend.
package optimize

import (
	"fmt"
	"strings"
)

// Objective is a deterministic scalar function of the free parameters,
// with an optional least-squares view: Residuals fills dst with per-bin
// values whose squares sum to the scalar objective (up to a
// model-independent offset).
type Objective interface {
	// Eval returns the scalar objective at x.
	Eval(x []float64) float64
	// Residuals fills dst (length NResiduals) with per-bin residuals at x.
	Residuals(dst, x []float64)
	// NResiduals returns the residual vector length.
	NResiduals() int
	// Start returns the initial parameter values.
	Start() []float64
}

// Result holds the outcome of a minimization.
type Result struct {
	X     []float64 // best-fit parameters
	Value float64   // objective at X
}

// Optimizer minimizes an Objective. Implementations own all convergence
// criteria.
type Optimizer interface {
	Minimize(o Objective) (Result, error)
}

// Backend names accepted by ParseBackend.
const (
	BackendNelderMead = "neldermead"
	BackendLevMar     = "levmar"
)

// ParseBackend maps a backend name to a ready-to-use Optimizer with
// default settings. Unknown names are rejected.
func ParseBackend(name string) (Optimizer, error) {
	switch strings.ToLower(name) {
	case BackendNelderMead:
		return &NelderMead{}, nil
	case BackendLevMar:
		return &LevMar{}, nil
	default:
		return nil, fmt.Errorf("optimize: unsupported backend %q (want %s or %s)",
			name, BackendNelderMead, BackendLevMar)
	}
}

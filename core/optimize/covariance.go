// core/optimize/covariance.go
package optimize

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// ErrMethodHesse names the Hessian-based covariance estimator.
const ErrMethodHesse = "hesse"

// ParseErrMethod validates an error-estimation method name.
func ParseErrMethod(name string) (string, error) {
	switch strings.ToLower(name) {
	case ErrMethodHesse:
		return ErrMethodHesse, nil
	default:
		return "", fmt.Errorf("optimize: unsupported error method %q (want %s)", name, ErrMethodHesse)
	}
}

// Covariance estimates the parameter covariance at the minimum x of a
// likelihood-ratio statistic f (f plays the role of -2 ln L): it is twice
// the inverse of the numerical Hessian of f at x.
func Covariance(f func(x []float64) float64, x []float64) ([][]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("optimize: covariance of empty parameter vector")
	}
	hess := mat.NewSymDense(n, nil)
	fd.Hessian(hess, f, x, nil)

	var inv mat.Dense
	if err := inv.Inverse(hess); err != nil {
		return nil, fmt.Errorf("optimize: hessian not invertible: %w", err)
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = 2 * inv.At(i, j)
		}
	}
	return out, nil
}

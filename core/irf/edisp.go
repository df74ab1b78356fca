// core/irf/edisp.go
package irf

import (
	"errors"
	"fmt"
	"math"

	"gammafit-core/ebounds"
)

// EnergyDispersion is a redistribution matrix mapping counts in true-energy
// bins to reconstructed-energy bins. Row i holds the probabilities for true
// bin i; each row must sum to at most one (events can migrate out of the
// reco axis, never in).
type EnergyDispersion struct {
	eTrue ebounds.Bounds
	eReco ebounds.Bounds
	rmf   [][]float64 // [iTrue][jReco]
}

// NewEnergyDispersion validates shapes and row sums and builds the matrix.
func NewEnergyDispersion(eTrue, eReco ebounds.Bounds, rmf [][]float64) (*EnergyDispersion, error) {
	if len(rmf) != eTrue.NBins() {
		return nil, fmt.Errorf("irf: rmf has %d rows, true axis has %d bins", len(rmf), eTrue.NBins())
	}
	const tol = 1e-6
	cp := make([][]float64, len(rmf))
	for i, row := range rmf {
		if len(row) != eReco.NBins() {
			return nil, fmt.Errorf("irf: rmf row %d has %d cols, reco axis has %d bins", i, len(row), eReco.NBins())
		}
		sum := 0.0
		for j, v := range row {
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("irf: rmf[%d][%d] = %g is not a probability", i, j, v)
			}
			sum += v
		}
		if sum > 1+tol {
			return nil, fmt.Errorf("irf: rmf row %d sums to %g > 1", i, sum)
		}
		cp[i] = append([]float64(nil), row...)
	}
	return &EnergyDispersion{eTrue: eTrue, eReco: eReco, rmf: cp}, nil
}

// DiagonalEDisp returns a perfect-resolution dispersion on a shared axis.
func DiagonalEDisp(b ebounds.Bounds) *EnergyDispersion {
	n := b.NBins()
	rmf := make([][]float64, n)
	for i := range rmf {
		rmf[i] = make([]float64, n)
		rmf[i][i] = 1
	}
	return &EnergyDispersion{eTrue: b, eReco: b, rmf: rmf}
}

// ETrue returns the true-energy axis.
func (d *EnergyDispersion) ETrue() ebounds.Bounds { return d.eTrue }

// EReco returns the reconstructed-energy axis.
func (d *EnergyDispersion) EReco() ebounds.Bounds { return d.eReco }

// Apply folds a vector of counts per true bin into counts per reco bin.
func (d *EnergyDispersion) Apply(trueCounts []float64) ([]float64, error) {
	if len(trueCounts) != d.eTrue.NBins() {
		return nil, errors.New("irf: vector length does not match true axis")
	}
	out := make([]float64, d.eReco.NBins())
	for i, row := range d.rmf {
		v := trueCounts[i]
		if v == 0 {
			continue
		}
		for j, p := range row {
			out[j] += v * p
		}
	}
	return out, nil
}

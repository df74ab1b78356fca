// core/irf/aeff.go
// Instrument response functions: effective area and energy dispersion.
// This package has no app/output deps; the fit driver can import it cleanly.
package irf

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// EffectiveArea is a detection-area curve sampled at true-energy nodes.
// Between nodes it interpolates log-log; outside the sampled span the
// area is zero.
type EffectiveArea struct {
	energy []float64 // TeV, strictly increasing
	area   []float64 // cm2, non-negative
}

// NewEffectiveArea builds an effective-area curve from node energies (TeV)
// and areas (cm2).
func NewEffectiveArea(energyTeV, areaCm2 []float64) (*EffectiveArea, error) {
	if len(energyTeV) < 2 || len(energyTeV) != len(areaCm2) {
		return nil, errors.New("irf: effective area needs >= 2 matching energy/area nodes")
	}
	for i, e := range energyTeV {
		if e <= 0 {
			return nil, fmt.Errorf("irf: node energy %d = %g must be positive", i, e)
		}
		if i > 0 && e <= energyTeV[i-1] {
			return nil, fmt.Errorf("irf: node energies must be strictly increasing (node %d)", i)
		}
		if areaCm2[i] < 0 {
			return nil, fmt.Errorf("irf: node area %d = %g must be non-negative", i, areaCm2[i])
		}
	}
	a := &EffectiveArea{
		energy: append([]float64(nil), energyTeV...),
		area:   append([]float64(nil), areaCm2...),
	}
	return a, nil
}

// ConstEffectiveArea returns a flat curve, handy for tests and toy setups.
func ConstEffectiveArea(loTeV, hiTeV, areaCm2 float64) *EffectiveArea {
	return &EffectiveArea{energy: []float64{loTeV, hiTeV}, area: []float64{areaCm2, areaCm2}}
}

// AtTeV returns the interpolated area at energy e, in cm2.
func (a *EffectiveArea) AtTeV(e float64) float64 {
	n := len(a.energy)
	if e < a.energy[0] || e > a.energy[n-1] {
		return 0
	}
	j := sort.SearchFloat64s(a.energy, e)
	if j < n && a.energy[j] == e {
		return a.area[j]
	}
	// e lies in (energy[j-1], energy[j]); interpolate log-log.
	lo, hi := j-1, j
	if a.area[lo] <= 0 || a.area[hi] <= 0 {
		// Linear fallback where the curve touches zero.
		f := (e - a.energy[lo]) / (a.energy[hi] - a.energy[lo])
		return a.area[lo] + f*(a.area[hi]-a.area[lo])
	}
	f := math.Log(e/a.energy[lo]) / math.Log(a.energy[hi]/a.energy[lo])
	return math.Exp(math.Log(a.area[lo]) + f*math.Log(a.area[hi]/a.area[lo]))
}

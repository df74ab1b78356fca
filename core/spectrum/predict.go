// core/spectrum/predict.go
package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"

	"gammafit-core/spectral"
	"gammafit-core/units"
)

// PredictCounts evaluates the model's predicted counts per reco bin for
// one observation.
//
// Forward-folded: livetime x EDisp( per-true-bin integral of
// model(E) * Aeff(E) ). Otherwise the model flux is integrated directly
// over the reco bin edges with no instrument response.
//
// The result must be count-equivalent; any other unit is a configuration
// error surfaced as ErrUnitMismatch.
func PredictCounts(m spectral.Model, obs *Observation, forwardFolded bool) ([]float64, error) {
	if forwardFolded {
		return predictFolded(m, obs)
	}
	return predictDirect(m, obs)
}

// PredictedUnit returns the physical unit the prediction would carry,
// without computing it. Used to fail fast before iteration starts.
func PredictedUnit(m spectral.Model, forwardFolded bool) units.Unit {
	u := m.AmplitudeUnit().Mul(units.EnergyTeV) // integrated over energy
	if forwardFolded {
		u = u.Mul(units.Cm2).Mul(units.Second) // x area x livetime
	}
	return u
}

func checkCountUnit(m spectral.Model, forwardFolded bool) error {
	if u := PredictedUnit(m, forwardFolded); !u.IsCountEquivalent() {
		return fmt.Errorf("%w: model %s predicts unit %q", ErrUnitMismatch, m.Name(), u.String())
	}
	return nil
}

func predictFolded(m spectral.Model, obs *Observation) ([]float64, error) {
	if !obs.HasResponse() {
		return nil, fmt.Errorf("%w: observation %q has no instrument response for forward folding",
			ErrConfiguration, obs.ID)
	}
	if err := checkCountUnit(m, true); err != nil {
		return nil, err
	}

	eTrue := obs.EDisp.ETrue()
	perTrue := make([]float64, eTrue.NBins())
	rate := func(e float64) float64 { return m.Evaluate(e) * obs.Aeff.AtTeV(e) }
	for i := range perTrue {
		perTrue[i] = quad.Fixed(rate, eTrue.Lo(i), eTrue.Hi(i), 40, quad.Legendre{}, 0)
	}

	counts, err := obs.EDisp.Apply(perTrue)
	if err != nil {
		return nil, err
	}
	for j := range counts {
		counts[j] *= obs.LivetimeSec
	}
	return counts, nil
}

func predictDirect(m spectral.Model, obs *Observation) ([]float64, error) {
	if err := checkCountUnit(m, false); err != nil {
		return nil, err
	}
	n := obs.EReco.NBins()
	counts := make([]float64, n)
	for i := 0; i < n; i++ {
		counts[i] = m.Integral(obs.EReco.Lo(i), obs.EReco.Hi(i))
	}
	return counts, nil
}

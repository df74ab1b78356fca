// core/spectral/ecpl.go
package spectral

import (
	"math"

	"gammafit-core/units"
)

// ExpCutoffPowerLaw is phi(E) = phi0 * (E/E0)^(-Gamma) * exp(-(lambda*E)^alpha).
//
// Parameters: index (Gamma), amplitude (phi0), lambda (1/cutoff energy),
// alpha (cutoff sharpness, frozen), reference (E0, frozen).
type ExpCutoffPowerLaw struct {
	params *Parameters
	unit   units.Unit
}

const (
	ecplIndex = iota
	ecplAmplitude
	ecplLambda
	ecplAlpha
	ecplReference
)

// NewExpCutoffPowerLaw builds an exponential-cutoff power law with
// alpha = 1 and amplitude in cm-2 s-1 TeV-1.
func NewExpCutoffPowerLaw(index, amplitude, lambdaPerTeV, referenceTeV float64) *ExpCutoffPowerLaw {
	return &ExpCutoffPowerLaw{
		params: NewParameters(
			Parameter{Name: "index", Value: index},
			Parameter{Name: "amplitude", Value: amplitude},
			Parameter{Name: "lambda", Value: lambdaPerTeV},
			Parameter{Name: "alpha", Value: 1, Frozen: true},
			Parameter{Name: "reference", Value: referenceTeV, Frozen: true},
		),
		unit: units.FluxPerCm2STeV,
	}
}

// WithAmplitudeUnit overrides the amplitude unit.
func (m *ExpCutoffPowerLaw) WithAmplitudeUnit(u units.Unit) *ExpCutoffPowerLaw {
	m.unit = u
	return m
}

func (m *ExpCutoffPowerLaw) Name() string { return "ExpCutoffPowerLaw" }

func (m *ExpCutoffPowerLaw) Parameters() *Parameters { return m.params }

func (m *ExpCutoffPowerLaw) AmplitudeUnit() units.Unit { return m.unit }

func (m *ExpCutoffPowerLaw) Evaluate(eTeV float64) float64 {
	gamma := m.params.value(ecplIndex)
	phi0 := m.params.value(ecplAmplitude)
	lambda := m.params.value(ecplLambda)
	alpha := m.params.value(ecplAlpha)
	e0 := m.params.value(ecplReference)
	return phi0 * math.Pow(eTeV/e0, -gamma) * math.Exp(-math.Pow(lambda*eTeV, alpha))
}

// Integral has no closed form for general alpha; integrate numerically.
func (m *ExpCutoffPowerLaw) Integral(lo, hi float64) float64 {
	return numIntegral(m.Evaluate, lo, hi)
}

func (m *ExpCutoffPowerLaw) Copy() Model {
	return &ExpCutoffPowerLaw{params: m.params.Copy(), unit: m.unit}
}

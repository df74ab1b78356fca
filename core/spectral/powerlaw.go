// core/spectral/powerlaw.go
package spectral

import (
	"math"

	"gammafit-core/units"
)

// PowerLaw is phi(E) = phi0 * (E/E0)^(-Gamma).
//
// Parameters: index (Gamma), amplitude (phi0), reference (E0, frozen).
type PowerLaw struct {
	params *Parameters
	unit   units.Unit
}

// PowerLaw parameter layout.
const (
	plIndex = iota
	plAmplitude
	plReference
)

// NewPowerLaw builds a power law with amplitude in the standard
// differential-flux unit cm-2 s-1 TeV-1.
func NewPowerLaw(index, amplitude, referenceTeV float64) *PowerLaw {
	return &PowerLaw{
		params: NewParameters(
			Parameter{Name: "index", Value: index},
			Parameter{Name: "amplitude", Value: amplitude},
			Parameter{Name: "reference", Value: referenceTeV, Frozen: true},
		),
		unit: units.FluxPerCm2STeV,
	}
}

// WithAmplitudeUnit overrides the amplitude unit, e.g. "TeV-1" for a
// counts-spectrum model fitted without instrument response.
func (m *PowerLaw) WithAmplitudeUnit(u units.Unit) *PowerLaw {
	m.unit = u
	return m
}

func (m *PowerLaw) Name() string { return "PowerLaw" }

func (m *PowerLaw) Parameters() *Parameters { return m.params }

func (m *PowerLaw) AmplitudeUnit() units.Unit { return m.unit }

func (m *PowerLaw) Evaluate(eTeV float64) float64 {
	gamma := m.params.value(plIndex)
	phi0 := m.params.value(plAmplitude)
	e0 := m.params.value(plReference)
	return phi0 * math.Pow(eTeV/e0, -gamma)
}

// Integral uses the closed form; near Gamma == 1 it switches to the
// logarithmic limit.
func (m *PowerLaw) Integral(lo, hi float64) float64 {
	gamma := m.params.value(plIndex)
	phi0 := m.params.value(plAmplitude)
	e0 := m.params.value(plReference)
	if math.Abs(gamma-1) < 1e-9 {
		return phi0 * e0 * math.Log(hi/lo)
	}
	g := 1 - gamma
	return phi0 * math.Pow(e0, gamma) * (math.Pow(hi, g) - math.Pow(lo, g)) / g
}

func (m *PowerLaw) Copy() Model {
	return &PowerLaw{params: m.params.Copy(), unit: m.unit}
}

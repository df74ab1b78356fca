// core/spectral/sbpl.go
package spectral

import (
	"math"

	"gammafit-core/units"
)

// SmoothBrokenPowerLaw is
//
//	phi(E) = phi0 * (E/E0)^(-Gamma1) * (1 + (E/Eb)^((Gamma2-Gamma1)/beta))^(-beta)
//
// Parameters: index1, index2, amplitude, ebreak, reference (frozen),
// beta (smoothness, frozen).
type SmoothBrokenPowerLaw struct {
	params *Parameters
	unit   units.Unit
}

const (
	sbplIndex1 = iota
	sbplIndex2
	sbplAmplitude
	sbplEBreak
	sbplReference
	sbplBeta
)

// NewSmoothBrokenPowerLaw builds a smoothly broken power law with beta = 1
// and amplitude in cm-2 s-1 TeV-1.
func NewSmoothBrokenPowerLaw(index1, index2, amplitude, ebreakTeV, referenceTeV float64) *SmoothBrokenPowerLaw {
	return &SmoothBrokenPowerLaw{
		params: NewParameters(
			Parameter{Name: "index1", Value: index1},
			Parameter{Name: "index2", Value: index2},
			Parameter{Name: "amplitude", Value: amplitude},
			Parameter{Name: "ebreak", Value: ebreakTeV},
			Parameter{Name: "reference", Value: referenceTeV, Frozen: true},
			Parameter{Name: "beta", Value: 1, Frozen: true},
		),
		unit: units.FluxPerCm2STeV,
	}
}

// WithAmplitudeUnit overrides the amplitude unit.
func (m *SmoothBrokenPowerLaw) WithAmplitudeUnit(u units.Unit) *SmoothBrokenPowerLaw {
	m.unit = u
	return m
}

func (m *SmoothBrokenPowerLaw) Name() string { return "SmoothBrokenPowerLaw" }

func (m *SmoothBrokenPowerLaw) Parameters() *Parameters { return m.params }

func (m *SmoothBrokenPowerLaw) AmplitudeUnit() units.Unit { return m.unit }

func (m *SmoothBrokenPowerLaw) Evaluate(eTeV float64) float64 {
	g1 := m.params.value(sbplIndex1)
	g2 := m.params.value(sbplIndex2)
	phi0 := m.params.value(sbplAmplitude)
	eb := m.params.value(sbplEBreak)
	e0 := m.params.value(sbplReference)
	beta := m.params.value(sbplBeta)
	return phi0 * math.Pow(eTeV/e0, -g1) *
		math.Pow(1+math.Pow(eTeV/eb, (g2-g1)/beta), -beta)
}

func (m *SmoothBrokenPowerLaw) Integral(lo, hi float64) float64 {
	return numIntegral(m.Evaluate, lo, hi)
}

func (m *SmoothBrokenPowerLaw) Copy() Model {
	return &SmoothBrokenPowerLaw{params: m.params.Copy(), unit: m.unit}
}

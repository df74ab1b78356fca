// core/units/unit.go
// Tiny physical-unit algebra for the quantities the fit pipeline moves
// around: areas (cm2), times (s) and energies (TeV). Just enough to prove
// that a predicted-counts vector really is a count, nothing more.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is an exponent vector over the three base dimensions used by the
// pipeline. The zero value is dimensionless (count-equivalent).
type Unit struct {
	Cm  int // length as cm
	S   int // time as s
	TeV int // energy as TeV
}

// Common units.
var (
	Dimensionless  = Unit{}
	Cm2            = Unit{Cm: 2}
	Second         = Unit{S: 1}
	EnergyTeV      = Unit{TeV: 1}
	PerTeV         = Unit{TeV: -1}                 // integral counts spectrum amplitude
	FluxPerCm2STeV = Unit{Cm: -2, S: -1, TeV: -1} // standard differential flux
)

// Parse reads a unit string like "cm-2 s-1 TeV-1" or "TeV-1". The empty
// string parses to Dimensionless.
func Parse(s string) (Unit, error) {
	var u Unit
	for _, tok := range strings.Fields(s) {
		base := tok
		exp := 1
		i := strings.IndexAny(tok, "-0123456789")
		if i > 0 {
			base = tok[:i]
			n, err := strconv.Atoi(tok[i:])
			if err != nil {
				return Unit{}, fmt.Errorf("units: bad exponent in %q", tok)
			}
			exp = n
		}
		switch base {
		case "cm":
			u.Cm += exp
		case "cm2":
			u.Cm += 2 * exp
		case "s":
			u.S += exp
		case "TeV":
			u.TeV += exp
		case "ct", "count":
			// counts are dimensionless
		default:
			return Unit{}, fmt.Errorf("units: unknown unit %q", base)
		}
	}
	return u, nil
}

// Mul returns the product unit u*v.
func (u Unit) Mul(v Unit) Unit {
	return Unit{Cm: u.Cm + v.Cm, S: u.S + v.S, TeV: u.TeV + v.TeV}
}

// Div returns the quotient unit u/v.
func (u Unit) Div(v Unit) Unit {
	return Unit{Cm: u.Cm - v.Cm, S: u.S - v.S, TeV: u.TeV - v.TeV}
}

// IsCountEquivalent reports whether u is dimensionless, i.e. a valid unit
// for a counts vector.
func (u Unit) IsCountEquivalent() bool { return u == Unit{} }

// String renders the unit in the same compact form Parse accepts.
func (u Unit) String() string {
	if u.IsCountEquivalent() {
		return ""
	}
	var parts []string
	add := func(base string, exp int) {
		switch {
		case exp == 0:
		case exp == 1:
			parts = append(parts, base)
		default:
			parts = append(parts, fmt.Sprintf("%s%d", base, exp))
		}
	}
	add("cm", u.Cm)
	add("s", u.S)
	add("TeV", u.TeV)
	return strings.Join(parts, " ")
}

// Energy-scale conversions. The pipeline works internally in TeV.
const (
	TeVPerGeV = 1e-3
	TeVPerMeV = 1e-6
)

// TeVFromGeV converts an energy in GeV to TeV.
func TeVFromGeV(e float64) float64 { return e * TeVPerGeV }

// TeVFromMeV converts an energy in MeV to TeV (Fermi-LAT convention).
func TeVFromMeV(e float64) float64 { return e * TeVPerMeV }

// core/units/unit_test.go
package units

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
	}{
		{"", Dimensionless},
		{"TeV-1", PerTeV},
		{"cm-2 s-1 TeV-1", FluxPerCm2STeV},
		{"cm2 s", Unit{Cm: 2, S: 1}},
		{"ct", Dimensionless},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
	if _, err := Parse("furlong"); err == nil {
		t.Fatalf("expected error for unknown unit")
	}
}

func TestAlgebra(t *testing.T) {
	// flux x TeV x cm2 x s must cancel down to a pure count.
	u := FluxPerCm2STeV.Mul(EnergyTeV).Mul(Cm2).Mul(Second)
	if !u.IsCountEquivalent() {
		t.Fatalf("expected count-equivalent, got %q", u.String())
	}
	// without the response factors it stays dimensionful
	if FluxPerCm2STeV.Mul(EnergyTeV).IsCountEquivalent() {
		t.Fatalf("flux x TeV must not be count-equivalent")
	}
	if got := Cm2.Div(Cm2); !got.IsCountEquivalent() {
		t.Fatalf("u/u must be dimensionless")
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, u := range []Unit{FluxPerCm2STeV, PerTeV, Cm2, Dimensionless} {
		back, err := Parse(u.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", u.String(), err)
		}
		if back != u {
			t.Fatalf("round trip %q: got %+v, want %+v", u.String(), back, u)
		}
	}
}

func TestEnergyConversions(t *testing.T) {
	if got := TeVFromGeV(1000); got != 1 {
		t.Fatalf("TeVFromGeV(1000) = %g", got)
	}
	if got := TeVFromMeV(1e6); got != 1 {
		t.Fatalf("TeVFromMeV(1e6) = %g", got)
	}
}

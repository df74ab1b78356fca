// core/spectral/params_test.go
package spectral

import "testing"

func TestParametersFreeView(t *testing.T) {
	p := NewParameters(
		Parameter{Name: "index", Value: 2},
		Parameter{Name: "amplitude", Value: 4},
		Parameter{Name: "reference", Value: 1, Frozen: true},
	)
	names := p.FreeNames()
	if len(names) != 2 || names[0] != "index" || names[1] != "amplitude" {
		t.Fatalf("FreeNames = %v", names)
	}
	vals := p.FreeValues()
	if len(vals) != 2 || vals[0] != 2 || vals[1] != 4 {
		t.Fatalf("FreeValues = %v", vals)
	}
}

func TestSetFreeSkipsFrozen(t *testing.T) {
	p := NewParameters(
		Parameter{Name: "index", Value: 2},
		Parameter{Name: "reference", Value: 1, Frozen: true},
		Parameter{Name: "amplitude", Value: 4},
	)
	if err := p.SetFree([]float64{2.5, 5}); err != nil {
		t.Fatalf("SetFree: %v", err)
	}
	if v, _ := p.Get("index"); v != 2.5 {
		t.Fatalf("index = %g", v)
	}
	if v, _ := p.Get("reference"); v != 1 {
		t.Fatalf("reference moved: %g", v)
	}
	if v, _ := p.Get("amplitude"); v != 5 {
		t.Fatalf("amplitude = %g", v)
	}
	if err := p.SetFree([]float64{1}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if err := p.SetFree([]float64{1, 2, 3}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestFreezeAndUnknownNames(t *testing.T) {
	p := NewParameters(Parameter{Name: "index", Value: 2})
	if err := p.Freeze("index"); err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	if got := p.FreeNames(); len(got) != 0 {
		t.Fatalf("FreeNames after freeze = %v", got)
	}
	if err := p.Set("nope", 1); err == nil {
		t.Fatalf("expected error for unknown parameter")
	}
	if err := p.Freeze("nope"); err == nil {
		t.Fatalf("expected error for unknown parameter")
	}
}

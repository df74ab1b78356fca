// core/spectral/params.go
package spectral

import (
	"fmt"
)

// Parameter is a single named model parameter. Frozen parameters keep
// their value during a fit and are not handed to the optimizer.
type Parameter struct {
	Name   string
	Value  float64
	Frozen bool
}

// Parameters is an ordered parameter set. Order is part of a model's
// identity: it fixes the covariance-matrix axis.
type Parameters struct {
	list []Parameter
}

// NewParameters builds a parameter set from the given parameters in order.
func NewParameters(ps ...Parameter) *Parameters {
	cp := make([]Parameter, len(ps))
	copy(cp, ps)
	return &Parameters{list: cp}
}

// Len returns the number of parameters.
func (p *Parameters) Len() int { return len(p.list) }

// At returns the parameter at index i.
func (p *Parameters) At(i int) Parameter { return p.list[i] }

// Names returns all parameter names in order.
func (p *Parameters) Names() []string {
	out := make([]string, len(p.list))
	for i, pr := range p.list {
		out[i] = pr.Name
	}
	return out
}

// Get returns the value of the named parameter.
func (p *Parameters) Get(name string) (float64, bool) {
	for _, pr := range p.list {
		if pr.Name == name {
			return pr.Value, true
		}
	}
	return 0, false
}

// Set assigns the value of the named parameter.
func (p *Parameters) Set(name string, v float64) error {
	for i := range p.list {
		if p.list[i].Name == name {
			p.list[i].Value = v
			return nil
		}
	}
	return fmt.Errorf("spectral: no parameter %q", name)
}

// Freeze marks the named parameter as fixed during fits.
func (p *Parameters) Freeze(name string) error {
	for i := range p.list {
		if p.list[i].Name == name {
			p.list[i].Frozen = true
			return nil
		}
	}
	return fmt.Errorf("spectral: no parameter %q", name)
}

// FreeNames returns the names of the non-frozen parameters in order.
func (p *Parameters) FreeNames() []string {
	var out []string
	for _, pr := range p.list {
		if !pr.Frozen {
			out = append(out, pr.Name)
		}
	}
	return out
}

// FreeValues returns the values of the non-frozen parameters in order.
func (p *Parameters) FreeValues() []float64 {
	var out []float64
	for _, pr := range p.list {
		if !pr.Frozen {
			out = append(out, pr.Value)
		}
	}
	return out
}

// SetFree assigns the non-frozen parameter values from x, in order.
// len(x) must equal the number of free parameters.
func (p *Parameters) SetFree(x []float64) error {
	j := 0
	for i := range p.list {
		if p.list[i].Frozen {
			continue
		}
		if j >= len(x) {
			return fmt.Errorf("spectral: got %d free values, want %d", len(x), len(p.FreeNames()))
		}
		p.list[i].Value = x[j]
		j++
	}
	if j != len(x) {
		return fmt.Errorf("spectral: got %d free values, want %d", len(x), j)
	}
	return nil
}

// Copy returns a deep copy of the parameter set.
func (p *Parameters) Copy() *Parameters {
	cp := make([]Parameter, len(p.list))
	copy(cp, p.list)
	return &Parameters{list: cp}
}

// value reads parameter i without a name lookup; models use it on their
// own fixed layouts.
func (p *Parameters) value(i int) float64 { return p.list[i].Value }

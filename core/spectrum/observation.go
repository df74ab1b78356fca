// core/spectrum/observation.go
package spectrum

import (
	"fmt"

	"gammafit-core/ebounds"
	"gammafit-core/irf"
)

// Observation bundles one dataset's binned counts with its instrument
// response. The fit references observations, it never copies or mutates
// them; the caller owns the data.
//
// OffCounts, Aeff, EDisp and Quality are optional. A nil Quality slice
// means every bin is good.
type Observation struct {
	ID    string
	EReco ebounds.Bounds

	OnCounts  []float64
	OffCounts []float64 // background region; required for wstat
	Alpha     float64   // on/off exposure ratio

	LivetimeSec float64
	Aeff        *irf.EffectiveArea
	EDisp       *irf.EnergyDispersion

	Quality []bool // true marks a bad bin excluded from fits
}

// Validate checks internal shape consistency.
func (o *Observation) Validate() error {
	n := o.EReco.NBins()
	if n < 1 {
		return fmt.Errorf("observation %q: empty energy axis", o.ID)
	}
	if len(o.OnCounts) != n {
		return fmt.Errorf("observation %q: %d on-counts for %d bins", o.ID, len(o.OnCounts), n)
	}
	if o.OffCounts != nil && len(o.OffCounts) != n {
		return fmt.Errorf("observation %q: %d off-counts for %d bins", o.ID, len(o.OffCounts), n)
	}
	if o.Quality != nil && len(o.Quality) != n {
		return fmt.Errorf("observation %q: %d quality flags for %d bins", o.ID, len(o.Quality), n)
	}
	if o.LivetimeSec <= 0 {
		return fmt.Errorf("observation %q: livetime %g s must be positive", o.ID, o.LivetimeSec)
	}
	if o.OffCounts != nil && o.Alpha <= 0 {
		return fmt.Errorf("observation %q: alpha %g must be positive when off-counts are set", o.ID, o.Alpha)
	}
	if o.EDisp != nil && o.EDisp.EReco().NBins() != n {
		return fmt.Errorf("observation %q: energy dispersion reco axis has %d bins, want %d",
			o.ID, o.EDisp.EReco().NBins(), n)
	}
	return nil
}

// HasResponse reports whether the observation carries the full instrument
// response needed for forward folding.
func (o *Observation) HasResponse() bool { return o.Aeff != nil && o.EDisp != nil }

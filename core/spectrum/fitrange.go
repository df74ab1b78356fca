// core/spectrum/fitrange.go
package spectrum

// EnergyRange is an energy interval [LoTeV, HiTeV) in TeV.
type EnergyRange struct {
	LoTeV float64
	HiTeV float64
}

// FitRangeMask returns the per-bin inclusion mask for one observation.
// A bin is included iff it lies entirely inside the global range (when one
// is set) and is not flagged bad quality. A bin straddling a range
// boundary is excluded on both sides: partial bins would bias the
// statistic.
//
// With no global range and no quality flags every bin is included.
func FitRangeMask(obs *Observation, global *EnergyRange) []bool {
	n := obs.EReco.NBins()
	mask := make([]bool, n)
	for i := 0; i < n; i++ {
		if obs.Quality != nil && obs.Quality[i] {
			continue
		}
		if global != nil {
			if obs.EReco.Lo(i) < global.LoTeV || obs.EReco.Hi(i) > global.HiTeV {
				continue
			}
		}
		mask[i] = true
	}
	return mask
}

// TrueFitRange derives the actually usable energy span from a mask: the
// lower edge of the first included bin to the upper edge of the last.
// Both edges are always edges of the observation's own axis, so the
// reported range reflects what was fit, not what was requested.
func TrueFitRange(obs *Observation, mask []bool) (EnergyRange, error) {
	first, last := -1, -1
	for i, ok := range mask {
		if !ok {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return EnergyRange{}, ErrEmptyFitRange
	}
	return EnergyRange{LoTeV: obs.EReco.Lo(first), HiTeV: obs.EReco.Hi(last)}, nil
}

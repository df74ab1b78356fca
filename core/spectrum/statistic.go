// core/spectrum/statistic.go
package spectrum

import (
	"fmt"
	"math"

	"gammafit-core/stats"
)

// Statistic is the closed set of supported fit statistics. Unknown names
// are rejected at construction time by ParseStatistic, before any counts
// are predicted.
type Statistic int

const (
	// StatCash is the Cash statistic for on-counts only.
	StatCash Statistic = iota
	// StatWStat is the W statistic for on/off counts with profiled
	// background.
	StatWStat
)

// ParseStatistic maps a statistic name to its tag.
func ParseStatistic(name string) (Statistic, error) {
	switch name {
	case "cash":
		return StatCash, nil
	case "wstat":
		return StatWStat, nil
	default:
		return 0, fmt.Errorf("%w: %q (want cash or wstat)", ErrUnsupportedStatistic, name)
	}
}

// String returns the statistic's config name.
func (s Statistic) String() string {
	switch s {
	case StatCash:
		return "cash"
	case StatWStat:
		return "wstat"
	default:
		return fmt.Sprintf("Statistic(%d)", int(s))
	}
}

// Requirements reports whether the statistic needs off-counts.
func (s Statistic) needsOff() bool { return s == StatWStat }

// Eval returns the per-bin statistic for one observation and its
// predicted signal counts.
func (s Statistic) Eval(obs *Observation, npred []float64) ([]float64, error) {
	switch s {
	case StatCash:
		return stats.Cash(obs.OnCounts, npred), nil
	case StatWStat:
		if obs.OffCounts == nil {
			return nil, fmt.Errorf("%w: observation %q has no off-counts for wstat",
				ErrConfiguration, obs.ID)
		}
		return stats.WStat(obs.OnCounts, obs.OffCounts, obs.Alpha, npred), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStatistic, s)
	}
}

// Residuals returns per-bin values whose squares sum to the saturated
// statistic: the least-squares view used by the Levenberg-Marquardt
// backend. For cash this is the cstat form (same minimum, nonnegative
// bins); wstat already carries its saturated terms.
func (s Statistic) Residuals(obs *Observation, npred []float64) ([]float64, error) {
	var perBin []float64
	switch s {
	case StatCash:
		perBin = stats.CStat(obs.OnCounts, npred)
	case StatWStat:
		if obs.OffCounts == nil {
			return nil, fmt.Errorf("%w: observation %q has no off-counts for wstat",
				ErrConfiguration, obs.ID)
		}
		perBin = stats.WStat(obs.OnCounts, obs.OffCounts, obs.Alpha, npred)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStatistic, s)
	}
	for i, v := range perBin {
		if v < 0 {
			v = 0
		}
		perBin[i] = math.Sqrt(v)
	}
	return perBin, nil
}

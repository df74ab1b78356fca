// core/events/events.go
package events

import (
	"math"
	"sort"

	"gammafit-core/ebounds"
)

// Event is a single reconstructed photon candidate.
type Event struct {
	TimeSec   float64 // seconds since the observation reference time
	RADeg     float64
	DecDeg    float64
	EnergyTeV float64
}

// Meta carries per-list bookkeeping. Selections preserve it; Stack keeps
// the first list's metadata and sums livetime.
type Meta struct {
	ObsID          string
	LivetimeSec    float64
	PointingRADeg  float64
	PointingDecDeg float64
}

// List is an ordered collection of events plus metadata. Selections
// return new lists and never mutate the receiver.
type List struct {
	Meta   Meta
	Events []Event
}

// Len returns the number of events.
func (l *List) Len() int { return len(l.Events) }

func (l *List) filter(keep func(Event) bool) *List {
	out := &List{Meta: l.Meta}
	for _, ev := range l.Events {
		if keep(ev) {
			out.Events = append(out.Events, ev)
		}
	}
	return out
}

// SelectEnergy keeps events with loTeV <= E < hiTeV.
func (l *List) SelectEnergy(loTeV, hiTeV float64) *List {
	return l.filter(func(ev Event) bool {
		return ev.EnergyTeV >= loTeV && ev.EnergyTeV < hiTeV
	})
}

// SelectTime keeps events with t0 <= t < t1, in seconds.
func (l *List) SelectTime(t0, t1 float64) *List {
	return l.filter(func(ev Event) bool {
		return ev.TimeSec >= t0 && ev.TimeSec < t1
	})
}

// SelectSkyCone keeps events within radiusDeg of the given sky position.
func (l *List) SelectSkyCone(raDeg, decDeg, radiusDeg float64) *List {
	return l.filter(func(ev Event) bool {
		return Separation(raDeg, decDeg, ev.RADeg, ev.DecDeg) <= radiusDeg
	})
}

// SelectOffset keeps events whose angular distance from the pointing
// position lies in [loDeg, hiDeg).
func (l *List) SelectOffset(loDeg, hiDeg float64) *List {
	return l.filter(func(ev Event) bool {
		off := Separation(l.Meta.PointingRADeg, l.Meta.PointingDecDeg, ev.RADeg, ev.DecDeg)
		return off >= loDeg && off < hiDeg
	})
}

// Stack concatenates the given lists. Metadata is taken from the first
// list; livetimes are summed. An empty input yields an empty list.
func Stack(lists ...*List) *List {
	out := &List{}
	for i, l := range lists {
		if i == 0 {
			out.Meta = l.Meta
		} else {
			out.Meta.LivetimeSec += l.Meta.LivetimeSec
		}
		out.Events = append(out.Events, l.Events...)
	}
	return out
}

// FillSpectrum bins event energies into counts on the given axis. Events
// outside the axis span are dropped.
func (l *List) FillSpectrum(b ebounds.Bounds) []float64 {
	counts := make([]float64, b.NBins())
	for _, ev := range l.Events {
		if i := b.FindBin(ev.EnergyTeV); i >= 0 {
			counts[i]++
		}
	}
	return counts
}

// MedianEnergy returns the median event energy in TeV, NaN for an empty
// list.
func (l *List) MedianEnergy() float64 {
	n := len(l.Events)
	if n == 0 {
		return math.NaN()
	}
	e := make([]float64, n)
	for i, ev := range l.Events {
		e[i] = ev.EnergyTeV
	}
	sort.Float64s(e)
	if n%2 == 1 {
		return e[n/2]
	}
	return 0.5 * (e[n/2-1] + e[n/2])
}

// Separation computes the on-sky angular distance in degrees between two
// positions, using the haversine form for small-angle stability.
func Separation(ra1, dec1, ra2, dec2 float64) float64 {
	const d2r = math.Pi / 180
	dRA := (ra2 - ra1) * d2r
	dDec := (dec2 - dec1) * d2r
	a := math.Pow(math.Sin(dDec/2), 2) +
		math.Cos(dec1*d2r)*math.Cos(dec2*d2r)*math.Pow(math.Sin(dRA/2), 2)
	return 2 * math.Asin(math.Min(1, math.Sqrt(a))) / d2r
}

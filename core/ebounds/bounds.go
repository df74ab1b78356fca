// core/ebounds/bounds.go
// Reconstructed-energy binning shared by counts spectra and responses.
// All energies are in TeV.
package ebounds

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Bounds is an ordered set of energy bin edges. A Bounds with N+1 edges
// describes N contiguous bins [edge[i], edge[i+1]).
type Bounds struct {
	edges []float64
}

// FromEdges builds a Bounds from explicit bin edges in TeV.
func FromEdges(edges []float64) (Bounds, error) {
	if len(edges) < 2 {
		return Bounds{}, errors.New("ebounds: need at least two edges")
	}
	for i, e := range edges {
		if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
			return Bounds{}, fmt.Errorf("ebounds: edge %d = %g is not a positive finite energy", i, e)
		}
		if i > 0 && e <= edges[i-1] {
			return Bounds{}, fmt.Errorf("ebounds: edges must be strictly increasing (edge %d)", i)
		}
	}
	cp := make([]float64, len(edges))
	copy(cp, edges)
	return Bounds{edges: cp}, nil
}

// EqualLogSpacing builds n bins spaced logarithmically between emin and emax.
func EqualLogSpacing(emin, emax float64, n int) (Bounds, error) {
	if n < 1 {
		return Bounds{}, errors.New("ebounds: need at least one bin")
	}
	if emin <= 0 || emax <= emin {
		return Bounds{}, fmt.Errorf("ebounds: invalid range [%g, %g]", emin, emax)
	}
	edges := make([]float64, n+1)
	llo, lhi := math.Log10(emin), math.Log10(emax)
	for i := range edges {
		edges[i] = math.Pow(10, llo+(lhi-llo)*float64(i)/float64(n))
	}
	// Avoid round-off on the outer edges.
	edges[0] = emin
	edges[n] = emax
	return Bounds{edges: edges}, nil
}

// NBins returns the number of bins.
func (b Bounds) NBins() int { return len(b.edges) - 1 }

// Lo returns the lower edge of bin i.
func (b Bounds) Lo(i int) float64 { return b.edges[i] }

// Hi returns the upper edge of bin i.
func (b Bounds) Hi(i int) float64 { return b.edges[i+1] }

// Min returns the lowest edge.
func (b Bounds) Min() float64 { return b.edges[0] }

// Max returns the highest edge.
func (b Bounds) Max() float64 { return b.edges[len(b.edges)-1] }

// Edges returns a copy of all bin edges.
func (b Bounds) Edges() []float64 {
	cp := make([]float64, len(b.edges))
	copy(cp, b.edges)
	return cp
}

// Contains reports whether e lies in [Min, Max).
func (b Bounds) Contains(e float64) bool { return e >= b.Min() && e < b.Max() }

// FindBin returns the index of the bin holding e, or -1 if e is outside
// [Min, Max).
func (b Bounds) FindBin(e float64) int {
	if !b.Contains(e) {
		return -1
	}
	// First edge strictly above e; the bin is the one just below it.
	idx := sort.SearchFloat64s(b.edges, math.Nextafter(e, math.Inf(1)))
	return idx - 1
}

// Center returns the log-center of bin i.
func (b Bounds) Center(i int) float64 {
	return math.Sqrt(b.edges[i] * b.edges[i+1])
}

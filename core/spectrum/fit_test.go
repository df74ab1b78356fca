// core/spectrum/fit_test.go
package spectrum

import (
	"errors"
	"math"
	"testing"

	"gammafit-core/ebounds"
	"gammafit-core/optimize"
	"gammafit-core/spectral"
	"gammafit-core/units"
)

// countsModel is a per-TeV power law whose direct integral is already
// count-like, so fits run without an instrument response.
func countsModel(index, amplitude float64) *spectral.PowerLaw {
	return spectral.NewPowerLaw(index, amplitude, 1.0).WithAmplitudeUnit(units.PerTeV)
}

// obsFromModel builds an observation whose on-counts equal the model's
// direct prediction on the given edges.
func obsFromModel(t *testing.T, id string, edges []float64, m spectral.Model) *Observation {
	t.Helper()
	b, err := ebounds.FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	obs := &Observation{ID: id, EReco: b, LivetimeSec: 1800}
	obs.OnCounts = make([]float64, b.NBins())
	for i := range obs.OnCounts {
		obs.OnCounts[i] = m.Integral(b.Lo(i), b.Hi(i))
	}
	return obs
}

func TestNewRejectsBadConfigurations(t *testing.T) {
	m := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8}, m)

	if _, err := New(nil, Config{Stat: "cash"}, obs); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("nil model: %v", err)
	}
	if _, err := New(m, Config{Stat: "cash"}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("no observations: %v", err)
	}
	if _, err := New(m, Config{Stat: "bogus"}, obs); !errors.Is(err, ErrUnsupportedStatistic) {
		t.Fatalf("bogus statistic: %v", err)
	}
	if _, err := New(m, Config{Stat: "wstat"}, obs); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("wstat without off-counts: %v", err)
	}
	if _, err := New(m, Config{Stat: "cash", ForwardFolded: true}, obs); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("folding without response: %v", err)
	}
	if _, err := New(m, Config{Stat: "cash", Method: "minuit"}, obs); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("unknown backend: %v", err)
	}
	if _, err := New(m, Config{Stat: "cash", ErrMethod: "minos"}, obs); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("unknown error method: %v", err)
	}
	r := &EnergyRange{LoTeV: 20, HiTeV: 30}
	if _, err := New(m, Config{Stat: "cash", FitRange: r}, obs); !errors.Is(err, ErrEmptyFitRange) {
		t.Fatalf("empty fit range: %v", err)
	}
}

func TestMaskedBinContributesNothing(t *testing.T) {
	m := countsModel(2.0, 100)
	a := obsFromModel(t, "a", []float64{1, 2, 4, 8}, m)
	b := obsFromModel(t, "b", []float64{1, 2, 4, 8}, m)
	b.OnCounts[2] = 9999 // garbage in the masked bin
	a.Quality = []bool{false, false, true}
	b.Quality = []bool{false, false, true}

	fa, err := New(m, Config{Stat: "cash"}, a)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb, err := New(m, Config{Stat: "cash"}, b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sa, err := fa.TotalStat()
	if err != nil {
		t.Fatalf("TotalStat: %v", err)
	}
	sb, err := fb.TotalStat()
	if err != nil {
		t.Fatalf("TotalStat: %v", err)
	}
	if sa != sb {
		t.Fatalf("masked bin leaked into the statistic: %g vs %g", sa, sb)
	}
}

func TestRunRecoversParameters(t *testing.T) {
	truth := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8, 16}, truth)

	m := countsModel(2.4, 70) // start away from the truth
	fit, err := New(m, Config{Stat: "cash"}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	results, err := fit.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	idx, _ := r.Model.Parameters().Get("index")
	amp, _ := r.Model.Parameters().Get("amplitude")
	if math.Abs(idx-2.0) > 0.02 {
		t.Fatalf("index = %g, want ~2.0", idx)
	}
	if math.Abs(amp-100)/100 > 0.02 {
		t.Fatalf("amplitude = %g, want ~100", amp)
	}
	if r.StatName != "cash" {
		t.Fatalf("stat name = %q", r.StatName)
	}
	if len(r.Npred) != obs.EReco.NBins() {
		t.Fatalf("npred has %d bins", len(r.Npred))
	}
	if r.FitRange.LoTeV != 1 || r.FitRange.HiTeV != 16 {
		t.Fatalf("fit range = %+v", r.FitRange)
	}
}

func TestRunLevMarBackend(t *testing.T) {
	truth := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8, 16}, truth)

	m := countsModel(2.3, 80)
	fit, err := New(m, Config{Stat: "cash", Method: optimize.BackendLevMar}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	results, err := fit.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	idx, _ := results[0].Model.Parameters().Get("index")
	amp, _ := results[0].Model.Parameters().Get("amplitude")
	if math.Abs(idx-2.0) > 0.02 || math.Abs(amp-100)/100 > 0.02 {
		t.Fatalf("levmar fit: index %g, amplitude %g", idx, amp)
	}
}

func TestRunWStat(t *testing.T) {
	truth := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8}, truth)
	obs.OffCounts = []float64{30, 14, 8}
	obs.Alpha = 0.2
	// on-counts now carry the scaled background on top of the signal
	for i := range obs.OnCounts {
		obs.OnCounts[i] += obs.Alpha * obs.OffCounts[i]
	}

	m := countsModel(2.2, 80)
	fit, err := New(m, Config{Stat: "wstat"}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	results, err := fit.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := results[0]
	if r.StatName != "wstat" {
		t.Fatalf("stat name = %q", r.StatName)
	}
	if math.IsNaN(r.StatVal) || math.IsInf(r.StatVal, 0) {
		t.Fatalf("statval = %g", r.StatVal)
	}
	amp, _ := r.Model.Parameters().Get("amplitude")
	if amp <= 0 {
		t.Fatalf("amplitude = %g, want positive", amp)
	}
}

func TestResultModelIsASnapshot(t *testing.T) {
	truth := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8, 16}, truth)

	m := countsModel(2.2, 90)
	fit, err := New(m, Config{Stat: "cash"}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	results, err := fit.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want, _ := results[0].Model.Parameters().Get("index")

	// Mutating the live model must not move the recorded snapshot.
	if err := m.Parameters().Set("index", 99); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := results[0].Model.Parameters().Get("index"); got != want {
		t.Fatalf("snapshot moved with the live model: %g -> %g", want, got)
	}
}

func TestRunWithCovariance(t *testing.T) {
	truth := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8, 16}, truth)

	m := countsModel(2.2, 90)
	fit, err := New(m, Config{Stat: "cash", ErrMethod: "hesse"}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	results, err := fit.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := results[0]
	if r.Covariance == nil {
		t.Fatalf("covariance missing")
	}
	if len(r.CovarAxis) != 2 || r.CovarAxis[0] != "index" || r.CovarAxis[1] != "amplitude" {
		t.Fatalf("covar axis = %v", r.CovarAxis)
	}
	for i := range r.Covariance {
		if r.Covariance[i][i] <= 0 {
			t.Fatalf("variance %d = %g, want positive", i, r.Covariance[i][i])
		}
	}
	// The live model must be back at the best fit after the Hessian probe.
	live, _ := m.Parameters().Get("index")
	snap, _ := r.Model.Parameters().Get("index")
	if live != snap {
		t.Fatalf("live model left perturbed: %g vs %g", live, snap)
	}
}

func TestRunJointObservations(t *testing.T) {
	truth := countsModel(2.0, 100)
	a := obsFromModel(t, "a", []float64{1, 2, 4, 8}, truth)
	b := obsFromModel(t, "b", []float64{0.5, 1, 2, 4}, truth)

	m := countsModel(2.3, 70)
	fit, err := New(m, Config{Stat: "cash"}, a, b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	results, err := fit.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Obs.ID != "a" || results[1].Obs.ID != "b" {
		t.Fatalf("results out of order: %q, %q", results[0].Obs.ID, results[1].Obs.ID)
	}
	// One shared model: both snapshots hold the same joint best fit.
	i0, _ := results[0].Model.Parameters().Get("index")
	i1, _ := results[1].Model.Parameters().Get("index")
	if i0 != i1 {
		t.Fatalf("joint fit produced diverging snapshots: %g vs %g", i0, i1)
	}
	if results[1].FitRange.LoTeV != 0.5 || results[1].FitRange.HiTeV != 4 {
		t.Fatalf("second fit range = %+v", results[1].FitRange)
	}
}

func TestRunSurfacesUnitMismatch(t *testing.T) {
	m := spectral.NewPowerLaw(2.0, 100, 1.0) // differential flux, no response
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8}, countsModel(2.0, 100))
	fit, err := New(m, Config{Stat: "cash"}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := fit.Run(); !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}
}

func TestComputeFluxPointsNotImplemented(t *testing.T) {
	m := countsModel(2.0, 100)
	obs := obsFromModel(t, "a", []float64{1, 2, 4, 8}, m)
	fit, err := New(m, Config{Stat: "cash"}, obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	binning, _ := ebounds.EqualLogSpacing(1, 8, 3)
	if err := fit.ComputeFluxPoints(binning); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

// core/spectrum/fit.go
package spectrum

import (
	"fmt"

	"gammafit-core/ebounds"
	"gammafit-core/optimize"
	"gammafit-core/spectral"
)

// Config selects the statistic, folding mode and backends for one fit
// session. It is read once by New and never consulted again.
type Config struct {
	// Stat names the fit statistic: "cash" or "wstat". Default "wstat".
	Stat string
	// ForwardFolded folds the model through each observation's response.
	ForwardFolded bool
	// FitRange restricts the fit to a global energy window (optional).
	FitRange *EnergyRange
	// Method names the optimizer backend: "neldermead" (default) or
	// "levmar".
	Method string
	// ErrMethod names the covariance estimator ("hesse"), empty disables
	// error estimation.
	ErrMethod string
}

// Fit forward-folds a spectral model through one or more observations and
// drives an injected minimization backend over the masked, summed
// statistic. It owns no convergence logic; its objective is deterministic
// in the parameters and the backend does the rest.
type Fit struct {
	obs   []*Observation
	model spectral.Model

	stat          Statistic
	forwardFolded bool
	fitRange      *EnergyRange
	opt           optimize.Optimizer
	estErrors     bool

	masks  [][]bool
	nresid int
}

// New validates the whole configuration up front and computes the
// per-observation fit masks. A single observation is passed directly
// thanks to the variadic tail. All configuration problems surface here,
// before any counts are predicted.
func New(model spectral.Model, cfg Config, obs ...*Observation) (*Fit, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrConfiguration)
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrConfiguration)
	}
	for _, o := range obs {
		if o == nil {
			return nil, fmt.Errorf("%w: nil observation", ErrConfiguration)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
	}

	statName := cfg.Stat
	if statName == "" {
		statName = "wstat"
	}
	stat, err := ParseStatistic(statName)
	if err != nil {
		return nil, err
	}
	for _, o := range obs {
		if stat.needsOff() && o.OffCounts == nil {
			return nil, fmt.Errorf("%w: observation %q has no off-counts for wstat",
				ErrConfiguration, o.ID)
		}
		if cfg.ForwardFolded && !o.HasResponse() {
			return nil, fmt.Errorf("%w: observation %q has no instrument response for forward folding",
				ErrConfiguration, o.ID)
		}
	}

	method := cfg.Method
	if method == "" {
		method = optimize.BackendNelderMead
	}
	opt, err := optimize.ParseBackend(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	estErrors := false
	if cfg.ErrMethod != "" {
		if _, err := optimize.ParseErrMethod(cfg.ErrMethod); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		estErrors = true
	}

	f := &Fit{
		obs:           obs,
		model:         model,
		stat:          stat,
		forwardFolded: cfg.ForwardFolded,
		fitRange:      cfg.FitRange,
		opt:           opt,
		estErrors:     estErrors,
	}
	f.masks = make([][]bool, len(obs))
	for i, o := range obs {
		f.masks[i] = FitRangeMask(o, cfg.FitRange)
		if _, err := TrueFitRange(o, f.masks[i]); err != nil {
			return nil, fmt.Errorf("%w: observation %q", err, o.ID)
		}
		f.nresid += o.EReco.NBins()
	}
	return f, nil
}

// Masks returns the per-observation bin inclusion masks.
func (f *Fit) Masks() [][]bool { return f.masks }

// TrueFitRanges returns the usable energy span per observation.
func (f *Fit) TrueFitRanges() []EnergyRange {
	out := make([]EnergyRange, len(f.obs))
	for i, o := range f.obs {
		tr, _ := TrueFitRange(o, f.masks[i]) // checked in New
		out[i] = tr
	}
	return out
}

// TotalStat evaluates the masked, summed statistic at the model's current
// parameter values.
func (f *Fit) TotalStat() (float64, error) {
	total := 0.0
	for i, o := range f.obs {
		npred, err := PredictCounts(f.model, o, f.forwardFolded)
		if err != nil {
			return 0, err
		}
		perBin, err := f.stat.Eval(o, npred)
		if err != nil {
			return 0, err
		}
		for j, v := range perBin {
			if f.masks[i][j] {
				total += v
			}
		}
	}
	return total, nil
}

// Run executes the fit: minimize, optionally estimate covariance, and
// assemble one immutable result per observation. The model is left at its
// best-fit parameters; result records carry deep copies.
func (f *Fit) Run() ([]Result, error) {
	// Surfaces unit and response errors before the backend iterates.
	for _, o := range f.obs {
		if _, err := PredictCounts(f.model, o, f.forwardFolded); err != nil {
			return nil, err
		}
	}

	obj := &objective{fit: f}
	best, err := f.opt.Minimize(obj)
	if err != nil {
		return nil, err
	}
	if err := f.model.Parameters().SetFree(best.X); err != nil {
		return nil, err
	}

	results := make([]Result, len(f.obs))
	for i, o := range f.obs {
		npred, err := PredictCounts(f.model, o, f.forwardFolded)
		if err != nil {
			return nil, err
		}
		perBin, err := f.stat.Eval(o, npred)
		if err != nil {
			return nil, err
		}
		statVal := 0.0
		for j, v := range perBin {
			if f.masks[i][j] {
				statVal += v
			}
		}
		tr, err := TrueFitRange(o, f.masks[i])
		if err != nil {
			return nil, err
		}
		results[i] = Result{
			Model:    f.model.Copy(),
			FitRange: tr,
			StatName: f.stat.String(),
			StatVal:  statVal,
			Npred:    npred,
			Obs:      o,
		}
	}

	if f.estErrors {
		cov, err := optimize.Covariance(obj.Eval, best.X)
		if err != nil {
			return nil, err
		}
		axis := f.model.Parameters().FreeNames()
		for i := range results {
			results[i].Covariance = cov
			results[i].CovarAxis = axis
		}
		// The Hessian probe moved the live model; put it back.
		if err := f.model.Parameters().SetFree(best.X); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ComputeFluxPoints is declared for interface parity with the rest of the
// reduction chain but is not implemented.
func (f *Fit) ComputeFluxPoints(binning ebounds.Bounds) error {
	return fmt.Errorf("%w: flux-point computation", ErrNotImplemented)
}

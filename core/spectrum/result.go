// core/spectrum/result.go
package spectrum

import "gammafit-core/spectral"

// Result is one observation's share of a finished fit. The model is a
// deep copy taken at assembly time: error estimation and later fits
// perturb the live model, historical results must not move with it.
type Result struct {
	// Model is the best-fit model snapshot.
	Model spectral.Model
	// Covariance is the parameter covariance over the free parameters,
	// nil when error estimation was not run.
	Covariance [][]float64
	// CovarAxis names the covariance rows/columns.
	CovarAxis []string
	// FitRange is the true (usable) fit range, derived from the mask.
	FitRange EnergyRange
	// StatName and StatVal identify and total the masked statistic.
	StatName string
	StatVal  float64
	// Npred is the predicted-counts vector at the best-fit parameters.
	Npred []float64
	// Obs references the source observation (caller-owned, not copied).
	Obs *Observation
}

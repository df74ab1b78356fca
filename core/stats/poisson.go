// core/stats/poisson.go
// Poisson fit statistics for binned counts data.
//
// Cash and CStat are likelihood-ratio statistics for on-counts only;
// WStat profiles out an unknown background level from an off region
// (XSPEC appendix B, "W statistic"). All three are pure per-bin
// functions of their inputs.
//
// This package has no app/output deps; the fit driver can import it cleanly.
package stats

import "math"

// Predicted counts are truncated at this value before taking logs so
// mu = 0 stays finite.
const truncation = 1e-25

// Cash returns the per-bin Cash statistic 2*(mu - n*ln(mu)).
// Inputs must have equal length.
func Cash(nOn, mu []float64) []float64 {
	out := make([]float64, len(nOn))
	for i := range nOn {
		m := math.Max(mu[i], truncation)
		out[i] = 2 * (m - nOn[i]*math.Log(m))
	}
	return out
}

// CStat returns the per-bin Cash statistic relative to the saturated
// model, 2*(mu - n + n*ln(n/mu)). It differs from Cash by a
// model-independent offset, is non-negative, and vanishes where mu == n,
// which makes it usable as a squared residual for least-squares backends.
func CStat(nOn, mu []float64) []float64 {
	out := make([]float64, len(nOn))
	for i := range nOn {
		m := math.Max(mu[i], truncation)
		v := m - nOn[i]
		if nOn[i] > 0 {
			v += nOn[i] * math.Log(nOn[i]/m)
		}
		out[i] = 2 * v
		if out[i] < 0 {
			out[i] = 0 // round-off near the minimum
		}
	}
	return out
}

// WStat returns the per-bin W statistic for on/off counts with background
// scaling alpha and predicted signal counts muSig. The background in each
// bin is profiled out analytically; the saturated ("extra") terms are
// included so a perfect description scores approximately zero.
// Inputs must have equal length and alpha must be positive.
func WStat(nOn, nOff []float64, alpha float64, muSig []float64) []float64 {
	out := make([]float64, len(nOn))
	for i := range nOn {
		out[i] = wstatBin(nOn[i], nOff[i], alpha, muSig[i])
	}
	return out
}

func wstatBin(nOn, nOff, alpha, mu float64) float64 {
	// Profiled background: root of the per-bin likelihood condition.
	c := alpha*(nOn+nOff) - (1+alpha)*mu
	d := math.Sqrt(c*c + 4*alpha*(1+alpha)*nOff*mu)
	muBkg := (c + d) / (2 * alpha * (1 + alpha))

	v := mu + (1+alpha)*muBkg
	if nOn > 0 {
		v -= nOn * math.Log(math.Max(mu+alpha*muBkg, truncation))
	}
	if nOff > 0 {
		v -= nOff * math.Log(math.Max(muBkg, truncation))
	}

	// Saturated terms; zero where the counts are zero.
	if nOn > 0 {
		v += nOn * (math.Log(nOn) - 1)
	}
	if nOff > 0 {
		v += nOff * (math.Log(nOff) - 1)
	}
	return 2 * v
}

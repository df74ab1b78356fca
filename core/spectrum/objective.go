// core/spectrum/objective.go
package spectrum

import "math"

// objective adapts a Fit to the optimize.Objective contract. Every
// evaluation writes the trial parameters into the live model, predicts
// counts per observation and folds the masked statistic. Prediction
// failures map to +Inf so scalar backends back away from bad regions;
// the preflight in Run guarantees the start point itself is sound.
type objective struct {
	fit *Fit
}

func (o *objective) Eval(x []float64) float64 {
	f := o.fit
	if err := f.model.Parameters().SetFree(x); err != nil {
		return math.Inf(1)
	}
	total, err := f.TotalStat()
	if err != nil {
		return math.Inf(1)
	}
	return total
}

// Residuals fills dst with per-bin square-root statistic contributions,
// concatenated over observations. Masked bins contribute zero.
func (o *objective) Residuals(dst, x []float64) {
	f := o.fit
	if err := f.model.Parameters().SetFree(x); err != nil {
		fill(dst, 1e12)
		return
	}
	k := 0
	for i, obs := range f.obs {
		npred, err := PredictCounts(f.model, obs, f.forwardFolded)
		if err != nil {
			fill(dst, 1e12)
			return
		}
		perBin, err := f.stat.Residuals(obs, npred)
		if err != nil {
			fill(dst, 1e12)
			return
		}
		for j, r := range perBin {
			if f.masks[i][j] {
				dst[k] = r
			} else {
				dst[k] = 0
			}
			k++
		}
	}
}

func (o *objective) NResiduals() int { return o.fit.nresid }

func (o *objective) Start() []float64 {
	return o.fit.model.Parameters().FreeValues()
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

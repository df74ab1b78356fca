// internal/writers/result.go
package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"gammafit-core/spectrum"
	"gammafit/pkg/api"

	"gopkg.in/yaml.v3"
)

// ResultFileName returns the canonical output file name for a result.
func ResultFileName(r *spectrum.Result) string {
	return fmt.Sprintf("fit_result_%s.yaml", r.Model.Name())
}

// ToV1 converts a fit result to its stable serialization schema.
func ToV1(r *spectrum.Result) api.FitResultV1 {
	params := r.Model.Parameters()
	out := api.FitResultV1{
		Model: api.ModelV1{
			Name:       r.Model.Name(),
			Parameters: make([]api.ParameterV1, 0, params.Len()),
		},
		Statistic:  r.StatName,
		StatVal:    r.StatVal,
		FitRange:   api.RangeV1{LoTeV: r.FitRange.LoTeV, HiTeV: r.FitRange.HiTeV},
		Covariance: r.Covariance,
		CovarAxis:  r.CovarAxis,
	}
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		out.Model.Parameters = append(out.Model.Parameters, api.ParameterV1{
			Name:   p.Name,
			Value:  p.Value,
			Frozen: p.Frozen,
		})
	}
	if r.Obs != nil {
		out.ObsID = r.Obs.ID
	}
	return out
}

// WriteResult serializes r into outdir, creating the directory if absent.
// It returns the path of the written file.
func WriteResult(outdir string, r *spectrum.Result) (string, error) {
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	data, err := yaml.Marshal(ToV1(r))
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	path := filepath.Join(outdir, ResultFileName(r))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}

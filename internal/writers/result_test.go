// internal/writers/result_test.go
package writers

import (
	"os"
	"path/filepath"
	"testing"

	"gammafit-core/spectral"
	"gammafit-core/spectrum"
	"gammafit/pkg/api"

	"gopkg.in/yaml.v3"
)

func toyResult() *spectrum.Result {
	return &spectrum.Result{
		Model:      spectral.NewPowerLaw(2.1, 110, 1.0),
		Covariance: [][]float64{{0.01, 0}, {0, 4}},
		CovarAxis:  []string{"index", "amplitude"},
		FitRange:   spectrum.EnergyRange{LoTeV: 1, HiTeV: 8},
		StatName:   "cash",
		StatVal:    -12.5,
		Obs:        &spectrum.Observation{ID: "run-42"},
	}
}

func TestResultFileName(t *testing.T) {
	if got := ResultFileName(toyResult()); got != "fit_result_PowerLaw.yaml" {
		t.Fatalf("file name = %q", got)
	}
}

func TestWriteResultCreatesDirAndRoundTrips(t *testing.T) {
	outdir := filepath.Join(t.TempDir(), "nested", "results")
	path, err := WriteResult(outdir, toyResult())
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if filepath.Base(path) != "fit_result_PowerLaw.yaml" {
		t.Fatalf("wrote %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var back api.FitResultV1
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Model.Name != "PowerLaw" || back.Statistic != "cash" || back.StatVal != -12.5 {
		t.Fatalf("round trip lost fields: %+v", back)
	}
	if back.ObsID != "run-42" {
		t.Fatalf("obs id = %q", back.ObsID)
	}
	if len(back.Model.Parameters) != 3 || back.Model.Parameters[0].Name != "index" {
		t.Fatalf("parameters = %+v", back.Model.Parameters)
	}
	if !back.Model.Parameters[2].Frozen {
		t.Fatalf("reference should stay frozen in the snapshot")
	}
	if len(back.Covariance) != 2 || back.CovarAxis[1] != "amplitude" {
		t.Fatalf("covariance lost: %+v", back)
	}
}

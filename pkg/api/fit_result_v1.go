// pkg/api/fit_result_v1.go
package api

// FitResultV1 is the stable YAML schema for a spectral fit result.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FitResultV1 struct {
	Model      ModelV1     `yaml:"model"`
	Statistic  string      `yaml:"statistic"`
	StatVal    float64     `yaml:"statval"`
	FitRange   RangeV1     `yaml:"fit_range"`
	Covariance [][]float64 `yaml:"covariance,omitempty"`
	CovarAxis  []string    `yaml:"covar_axis,omitempty"`
	ObsID      string      `yaml:"obs_id,omitempty"`
}

// ModelV1 is a model snapshot: class name plus ordered parameters.
type ModelV1 struct {
	Name       string        `yaml:"name"`
	Parameters []ParameterV1 `yaml:"parameters"`
}

// ParameterV1 is one named model parameter.
type ParameterV1 struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Frozen bool    `yaml:"frozen,omitempty"`
}

// RangeV1 is an energy interval in TeV.
type RangeV1 struct {
	LoTeV float64 `yaml:"lo_tev"`
	HiTeV float64 `yaml:"hi_tev"`
}

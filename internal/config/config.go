// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gammafit-core/spectral"
	"gammafit-core/spectrum"
	"gammafit-core/units"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the analysis description read from YAML. Defaults are applied
// before validation, so a minimal file only names observations and a model.
type Config struct {
	Observations []string `yaml:"observations" validate:"required,min=1,dive,required"`

	Model struct {
		Name          string  `yaml:"name" validate:"required"`
		AmplitudeUnit string  `yaml:"amplitude_unit"`
		Parameters    []Param `yaml:"parameters" validate:"dive"`
	} `yaml:"model"`

	Fit struct {
		Statistic     string `yaml:"statistic" default:"wstat" validate:"oneof=cash wstat"`
		ForwardFolded *bool  `yaml:"forward_folded" default:"true"`
		Range         *Range `yaml:"range"`
		Method        string `yaml:"method" default:"neldermead" validate:"oneof=neldermead levmar"`
		ErrMethod     string `yaml:"err_method" validate:"omitempty,oneof=hesse"`
	} `yaml:"fit"`

	Output struct {
		Dir string `yaml:"dir" default:"results"`
	} `yaml:"output"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	} `yaml:"logging"`
}

// Param is an initial parameter override for the configured model.
type Param struct {
	Name   string  `yaml:"name" validate:"required"`
	Value  float64 `yaml:"value"`
	Frozen bool    `yaml:"frozen"`
}

// Range is an energy interval in TeV.
type Range struct {
	LoTeV float64 `yaml:"lo_tev" validate:"gt=0"`
	HiTeV float64 `yaml:"hi_tev" validate:"gtfield=LoTeV"`
}

// Load reads, defaults and validates an analysis config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes an analysis config from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %s", readable(err))
	}
	return &c, nil
}

// BuildModel constructs the configured spectral model with parameter
// overrides applied.
func (c *Config) BuildModel() (spectral.Model, error) {
	var m spectral.Model
	var err error
	if c.Model.AmplitudeUnit != "" {
		u, uerr := units.Parse(c.Model.AmplitudeUnit)
		if uerr != nil {
			return nil, fmt.Errorf("model amplitude unit: %w", uerr)
		}
		m, err = spectral.NewWithUnit(c.Model.Name, u)
	} else {
		m, err = spectral.New(c.Model.Name)
	}
	if err != nil {
		return nil, err
	}
	params := m.Parameters()
	for _, p := range c.Model.Parameters {
		if err := params.Set(p.Name, p.Value); err != nil {
			return nil, fmt.Errorf("model parameter %q: %w", p.Name, err)
		}
		if p.Frozen {
			if err := params.Freeze(p.Name); err != nil {
				return nil, fmt.Errorf("model parameter %q: %w", p.Name, err)
			}
		}
	}
	return m, nil
}

// FitConfig maps the fit section onto the core driver configuration.
func (c *Config) FitConfig() spectrum.Config {
	fc := spectrum.Config{
		Stat:      c.Fit.Statistic,
		Method:    c.Fit.Method,
		ErrMethod: c.Fit.ErrMethod,
	}
	if c.Fit.ForwardFolded != nil {
		fc.ForwardFolded = *c.Fit.ForwardFolded
	}
	if c.Fit.Range != nil {
		fc.FitRange = &spectrum.EnergyRange{LoTeV: c.Fit.Range.LoTeV, HiTeV: c.Fit.Range.HiTeV}
	}
	return fc
}

// readable flattens validator errors into one human-oriented line.
func readable(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Namespace()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s needs at least %s entries", fe.Namespace(), fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s",
				fe.Namespace(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", fe.Namespace(), fe.Param()))
		case "gtfield":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", fe.Namespace(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// internal/obsfile/obsfile.go
// Reads observation records from YAML and builds core observations.
package obsfile

import (
	"fmt"
	"os"

	"gammafit-core/ebounds"
	"gammafit-core/irf"
	"gammafit-core/spectrum"

	"gopkg.in/yaml.v3"
)

// record is the on-disk observation schema.
type record struct {
	ID          string    `yaml:"id"`
	ERecoEdges  []float64 `yaml:"e_reco_edges"`
	Counts      []float64 `yaml:"counts"`
	OffCounts   []float64 `yaml:"off_counts"`
	Alpha       float64   `yaml:"alpha"`
	LivetimeSec float64   `yaml:"livetime_sec"`
	Quality     []bool    `yaml:"quality"`

	Aeff *struct {
		EnergyTeV []float64 `yaml:"energy_tev"`
		AreaCm2   []float64 `yaml:"area_cm2"`
	} `yaml:"aeff"`

	EDisp *struct {
		ETrueEdges []float64   `yaml:"e_true_edges"`
		ERecoEdges []float64   `yaml:"e_reco_edges"`
		Matrix     [][]float64 `yaml:"matrix"`
	} `yaml:"edisp"`
}

// Load reads one observation file and validates the resulting record.
func Load(path string) (*spectrum.Observation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read observation: %w", err)
	}
	obs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obs, nil
}

// LoadAll reads a list of observation files.
func LoadAll(paths []string) ([]*spectrum.Observation, error) {
	out := make([]*spectrum.Observation, 0, len(paths))
	for _, p := range paths {
		obs, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, obs)
	}
	return out, nil
}

// Parse decodes an observation from YAML bytes and builds the core
// observation, including its response components when present.
func Parse(data []byte) (*spectrum.Observation, error) {
	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse observation: %w", err)
	}

	ereco, err := ebounds.FromEdges(r.ERecoEdges)
	if err != nil {
		return nil, fmt.Errorf("e_reco_edges: %w", err)
	}
	obs := &spectrum.Observation{
		ID:          r.ID,
		EReco:       ereco,
		OnCounts:    r.Counts,
		OffCounts:   r.OffCounts,
		Alpha:       r.Alpha,
		LivetimeSec: r.LivetimeSec,
		Quality:     r.Quality,
	}

	if r.Aeff != nil {
		aeff, err := irf.NewEffectiveArea(r.Aeff.EnergyTeV, r.Aeff.AreaCm2)
		if err != nil {
			return nil, fmt.Errorf("aeff: %w", err)
		}
		obs.Aeff = aeff
	}
	if r.EDisp != nil {
		etrue, err := ebounds.FromEdges(r.EDisp.ETrueEdges)
		if err != nil {
			return nil, fmt.Errorf("edisp e_true_edges: %w", err)
		}
		edreco, err := ebounds.FromEdges(r.EDisp.ERecoEdges)
		if err != nil {
			return nil, fmt.Errorf("edisp e_reco_edges: %w", err)
		}
		edisp, err := irf.NewEnergyDispersion(etrue, edreco, r.EDisp.Matrix)
		if err != nil {
			return nil, fmt.Errorf("edisp: %w", err)
		}
		obs.EDisp = edisp
	}

	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return obs, nil
}

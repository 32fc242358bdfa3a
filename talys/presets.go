package talys

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named bundle of run parameters, loaded from a presets YAML
// file so that commonly used model combinations do not have to be retyped
// as flags.
type Preset struct {
	Ldmodel    int    `yaml:"ldmodel"`
	Strength   int    `yaml:"strength"`
	Massmodel  int    `yaml:"massmodel"`
	MassSource string `yaml:"mass_source,omitempty"`
}

// PresetFile is the top-level structure of a presets YAML file:
//
//	presets:
//	  thesis-defaults:
//	    ldmodel: 5
//	    strength: 8
//	    massmodel: 2
//	    mass_source: jyfl
type PresetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPresets parses a presets file with strict field checking, so typos in
// parameter names fail loudly instead of silently keeping defaults.
func LoadPresets(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	var pf PresetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}
	return &pf, nil
}

// Lookup returns the named preset.
func (pf *PresetFile) Lookup(name string) (Preset, bool) {
	p, ok := pf.Presets[name]
	return p, ok
}

// Apply converts the preset into run parameters and a validated mass source.
func (p Preset) Apply() (RunParams, MassSource, error) {
	src, err := ParseMassSource(p.MassSource)
	if err != nil {
		return RunParams{}, "", err
	}
	return RunParams{Ldmodel: p.Ldmodel, Strength: p.Strength, Massmodel: p.Massmodel}, src, nil
}

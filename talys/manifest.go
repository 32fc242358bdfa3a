package talys

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestEntry summarizes one prepared run for the batch manifest.
type ManifestEntry struct {
	Index     int      `yaml:"reaction_index"`
	Reaction  string   `yaml:"reaction,omitempty"`
	Directory string   `yaml:"directory,omitempty"`
	Input     string   `yaml:"input,omitempty"`
	Status    string   `yaml:"status"`
	Warnings  []string `yaml:"warnings,omitempty"`
	Error     string   `yaml:"error,omitempty"`
}

// Manifest records the outcome of a batch of prepared runs so an operator
// can later see which directories under a runs root came from which
// reactions and parameters.
type Manifest struct {
	Created   string          `yaml:"created"`
	DataFile  string          `yaml:"data_file"`
	Ldmodel   int             `yaml:"ldmodel"`
	Strength  int             `yaml:"strength"`
	Massmodel int             `yaml:"massmodel"`
	Runs      []ManifestEntry `yaml:"runs"`
}

// BuildManifest aggregates per-run reports into a Manifest.
func BuildManifest(clock Clock, dataFile string, params RunParams, reports []RunReport) *Manifest {
	m := &Manifest{
		Created:   clock.Now().Format(time.RFC3339),
		DataFile:  dataFile,
		Ldmodel:   params.Ldmodel,
		Strength:  params.Strength,
		Massmodel: params.Massmodel,
		Runs:      make([]ManifestEntry, 0, len(reports)),
	}
	for _, r := range reports {
		entry := ManifestEntry{
			Index:     r.Index,
			Directory: r.DirName,
			Status:    r.Status(),
			Warnings:  r.Warnings,
		}
		if r.Reaction != (Reaction{}) {
			entry.Reaction = r.Reaction.String()
		}
		if r.InputPath != "" {
			entry.Input = filepath.Base(r.InputPath)
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		m.Runs = append(m.Runs, entry)
	}
	return m
}

// WriteManifest writes the manifest as YAML to <root>/manifest.yaml,
// replacing any manifest from a previous batch, and returns its path.
func WriteManifest(root string, m *Manifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	path := filepath.Join(root, "manifest.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

package spec

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario spec from a YAML file. Unknown keys are rejected
// so that a typoed parameter fails loudly instead of silently falling
// back to a default.
func Load(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s ScenarioSpec
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	s.ApplyDefaults()
	return &s, nil
}

// LoadProject loads a scenario spec from a project directory.
// It looks for scenario.yaml in the given directory.
func LoadProject(projectDir string) (*ScenarioSpec, error) {
	return Load(filepath.Join(projectDir, "scenario.yaml"))
}

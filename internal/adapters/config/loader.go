// Package config provides the YAML loader for dev-shell descriptors.
package config

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"shutbox/internal/core/domain"
)

// DefaultFilename is the descriptor file looked up when none is given.
const DefaultFilename = "shutbox.yaml"

// FileDescriptorLoader implements ports.DescriptorLoader using a YAML file.
type FileDescriptorLoader struct{}

// Shellfile represents the structure of the shutbox.yaml descriptor file.
type Shellfile struct {
	Name      string       `yaml:"name"`
	Inputs    []InputDTO   `yaml:"inputs"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
	Tools     []string     `yaml:"tools"`
	Libraries []string     `yaml:"libraries"`
}

// InputDTO represents a pinned input in the descriptor file.
type InputDTO struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Ref     string `yaml:"ref"`
	Rev     string `yaml:"rev"`
	Overlay bool   `yaml:"overlay"`
}

// ToolchainDTO represents the toolchain selection in the descriptor file.
type ToolchainDTO struct {
	Channel    string   `yaml:"channel"`
	Components []string `yaml:"components"`
}

// Load reads and validates the descriptor at the given path.
func (l *FileDescriptorLoader) Load(path string) (*domain.Descriptor, error) {
	return Load(path)
}

// Load reads a descriptor file from the given path and returns the validated
// domain model.
func Load(path string) (*domain.Descriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read descriptor file")
	}

	var shellfile Shellfile
	if err := yaml.Unmarshal(data, &shellfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse descriptor file")
	}

	d := &domain.Descriptor{
		Name:      shellfile.Name,
		Toolchain: domain.Toolchain(shellfile.Toolchain),
		Tools:     shellfile.Tools,
		Libraries: shellfile.Libraries,
	}
	for _, in := range shellfile.Inputs {
		d.Inputs = append(d.Inputs, domain.Input(in))
	}

	if err := d.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid descriptor file")
	}
	return d, nil
}

package taxonomy

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

const (
	SkillsFile         = "skills.yaml"
	CertificationsFile = "certifications.yaml"
)

//go:embed data/*.yaml
var defaults embed.FS

// Set bundles the two taxonomies used by the analyzer.
type Set struct {
	Skills         *Taxonomy
	Certifications *Taxonomy
}

// Parse decodes and validates a taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	t.build()
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Default returns the embedded taxonomies.
func Default() (Set, error) {
	return Load("")
}

// Load reads skills.yaml and certifications.yaml from dir. An empty dir, or a
// file missing from dir, falls back to the embedded copy.
func Load(dir string) (Set, error) {
	skills, err := loadOne(dir, SkillsFile)
	if err != nil {
		return Set{}, err
	}
	certs, err := loadOne(dir, CertificationsFile)
	if err != nil {
		return Set{}, err
	}
	return Set{Skills: skills, Certifications: certs}, nil
}

// MustDefault is Default for package-level initialization in tests and tools.
func MustDefault() Set {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

func loadOne(dir, name string) (*Taxonomy, error) {
	data, err := readFile(dir, name)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

func readFile(dir, name string) ([]byte, error) {
	if strings.TrimSpace(dir) != "" {
		data, err := os.ReadFile(filepath.Join(filepath.Clean(dir), name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}
	data, err := defaults.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, nil
}

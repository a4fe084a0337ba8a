// Package model reads plane frame definitions from YAML or JSON files and
// turns them into solver input.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/section"
)

const DefaultName = "frame"

// File is the on-disk frame description. Units are consistent SI:
// metres, newtons and pascals. Concrete strength fc is given in MPa.
type File struct {
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Materials   map[string]Material    `yaml:"materials" json:"materials"`
	Sections    map[string]SectionSpec `yaml:"sections" json:"sections"`
	Nodes       []frame.Node           `yaml:"nodes" json:"nodes"`
	Elements    []ElementSpec          `yaml:"elements" json:"elements"`
	Supports    []Support              `yaml:"supports" json:"supports"`
	Loads       []NodalLoad            `yaml:"loads" json:"loads"`
}

// Material gives the elastic modulus directly (e, Pa) or through the
// concrete compressive strength (fc, MPa).
type Material struct {
	E  float64 `yaml:"e,omitempty" json:"e,omitempty"`
	Fc float64 `yaml:"fc,omitempty" json:"fc,omitempty"`
}

// SectionSpec is a rectangle (width, depth), explicit properties
// (area, inertia) or a polygon outline.
type SectionSpec struct {
	Width    float64         `yaml:"width,omitempty" json:"width,omitempty"`
	Depth    float64         `yaml:"depth,omitempty" json:"depth,omitempty"`
	Area     float64         `yaml:"area,omitempty" json:"area,omitempty"`
	Inertia  float64         `yaml:"inertia,omitempty" json:"inertia,omitempty"`
	Vertices []section.Point `yaml:"vertices,omitempty" json:"vertices,omitempty"`
}

type ElementSpec struct {
	Start    int    `yaml:"start" json:"start"`
	End      int    `yaml:"end" json:"end"`
	Material string `yaml:"material" json:"material"`
	Section  string `yaml:"section" json:"section"`
}

// Support restrains the listed DOFs of a node. Fixed restrains all three.
// Settlement imposes a displacement on a DOF, which is then restrained too.
type Support struct {
	Node       int                `yaml:"node" json:"node"`
	Fix        []string           `yaml:"fix,omitempty" json:"fix,omitempty"`
	Fixed      bool               `yaml:"fixed,omitempty" json:"fixed,omitempty"`
	Settlement map[string]float64 `yaml:"settlement,omitempty" json:"settlement,omitempty"`
}

// NodalLoad is a point load at a node. Type defaults to dead load.
type NodalLoad struct {
	Node int     `yaml:"node" json:"node"`
	Fx   float64 `yaml:"fx,omitempty" json:"fx,omitempty"`
	Fy   float64 `yaml:"fy,omitempty" json:"fy,omitempty"`
	Mz   float64 `yaml:"mz,omitempty" json:"mz,omitempty"`
	Type string  `yaml:"type,omitempty" json:"type,omitempty"`
}

// Default returns an empty model carrying the default values that file
// contents override.
func Default() *File {
	return &File{
		Name:      DefaultName,
		Materials: map[string]Material{},
		Sections:  map[string]SectionSpec{},
	}
}

// Load reads a model from a .yaml, .yml or .json file and validates it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, f)
	case ".json":
		err = json.Unmarshal(data, f)
	default:
		return nil, fmt.Errorf("unsupported model file extension %q (use .yaml, .yml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Save writes the model as YAML, or as JSON when path ends in .json.
func Save(path string, f *File) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(f, "", "  ")
	} else {
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

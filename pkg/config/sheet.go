// Package config loads style sheets: YAML files that describe a set of
// controls, their sizes and their style attributes.
//
//	version: 1.0.0
//	density: 2
//	controls:
//	  - name: send
//	    kind: button
//	    width: 120
//	    height: 48
//	    text: Send
//	    attributes:
//	      bggradient: "linear|#FF6A11CB:0;#FF2575FC:1|0|clamp"
//	      interactionBundle: "shrink|dim"
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/veilar-ui/veilar/pkg/errors"
)

// SupportedMajor is the sheet format major version this package reads.
const SupportedMajor = "v1"

// Sheet is a parsed style sheet.
type Sheet struct {
	Version  string        `yaml:"version" validate:"required,sheet_version"`
	Density  float64       `yaml:"density" validate:"gte=0"`
	Controls []ControlSpec `yaml:"controls" validate:"required,min=1,unique=Name,dive"`
}

// ControlSpec describes one control in a sheet. Width, height and child
// offsets are in dp and scaled by the sheet density.
type ControlSpec struct {
	Name       string            `yaml:"name" validate:"required,control_name"`
	Kind       string            `yaml:"kind" validate:"required,control_kind"`
	Width      float64           `yaml:"width" validate:"gt=0"`
	Height     float64           `yaml:"height" validate:"gt=0"`
	Text       string            `yaml:"text"`
	Background string            `yaml:"background" validate:"omitempty,style_color"`
	TextColor  string            `yaml:"textColor" validate:"omitempty,style_color"`
	Attributes map[string]string `yaml:"attributes"`
	Children   []Placement       `yaml:"children" validate:"dive"`
}

// Placement positions a named control inside a container.
type Placement struct {
	Name string  `yaml:"name" validate:"required"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Load reads and validates the sheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes and validates a sheet. Unknown keys are rejected.
func Parse(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		if stderrors.Is(err, io.EOF) {
			err = stderrors.New("empty sheet")
		}
		return nil, configError("config.Parse", err)
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// Validate checks field constraints, that every child placement names
// another control in the sheet, and that no control ends up inside itself
// through any chain of containers.
func (s *Sheet) Validate() error {
	if err := validatorInstance().Struct(s); err != nil {
		return configError("config.Validate", describeValidation(err))
	}
	for _, c := range s.Controls {
		for _, p := range c.Children {
			if p.Name == c.Name {
				return configError("config.Validate", fmt.Errorf("control %q contains itself", c.Name))
			}
			if _, ok := s.Control(p.Name); !ok {
				return configError("config.Validate", fmt.Errorf("control %q places unknown child %q", c.Name, p.Name))
			}
		}
	}
	if cycle := s.containmentCycle(); cycle != nil {
		return configError("config.Validate", fmt.Errorf("containment loop %s", strings.Join(cycle, " -> ")))
	}
	return nil
}

// containmentCycle returns the first loop in the child graph as a list of
// names that starts and ends with the same control, or nil.
func (s *Sheet) containmentCycle() []string {
	const (
		unvisited = iota
		onPath
		done
	)
	children := make(map[string][]string, len(s.Controls))
	for _, c := range s.Controls {
		for _, p := range c.Children {
			children[c.Name] = append(children[c.Name], p.Name)
		}
	}
	state := make(map[string]int, len(s.Controls))
	var path []string

	var visit func(name string) []string
	visit = func(name string) []string {
		state[name] = onPath
		path = append(path, name)
		for _, child := range children[name] {
			switch state[child] {
			case onPath:
				start := slices.Index(path, child)
				return append(slices.Clone(path[start:]), child)
			case unvisited:
				if cycle := visit(child); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, c := range s.Controls {
		if state[c.Name] == unvisited {
			if cycle := visit(c.Name); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// Control looks up a control by name.
func (s *Sheet) Control(name string) (ControlSpec, bool) {
	for _, c := range s.Controls {
		if c.Name == name {
			return c, true
		}
	}
	return ControlSpec{}, false
}

func configError(op string, err error) error {
	return &errors.VeilarError{Op: op, Kind: errors.KindConfig, Err: err}
}

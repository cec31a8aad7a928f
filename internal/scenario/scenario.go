// Package scenario builds control trees from YAML descriptions, applies a
// list of operations to them and records every notification the controls
// raise.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Scenario is the top-level document of a scenario file.
type Scenario struct {
	// Theme optionally names a variant catalogue file. A relative path is
	// resolved against the directory of the scenario file.
	Theme    string        `yaml:"theme,omitempty"`
	Controls []ControlSpec `yaml:"controls"`
	// Watch lists the controls whose notifications are recorded. Empty means
	// every control.
	Watch []string `yaml:"watch,omitempty"`
	Steps []Step   `yaml:"steps"`
}

// ControlSpec describes one control and its subtree.
type ControlSpec struct {
	Name       string        `yaml:"name"`
	Variant    string        `yaml:"variant,omitempty"`
	Properties Assignments   `yaml:"properties,omitempty"`
	Children   []ControlSpec `yaml:"children,omitempty"`
}

// Assignment sets one property to a value in its textual form.
type Assignment struct {
	Property string
	Value    string
}

// Assignments is an ordered list of property assignments. In YAML it is
// written as a mapping whose key order is kept.
type Assignments []Assignment

// UnmarshalYAML decodes a mapping of property names to scalar values.
func (a *Assignments) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", n.Line)
	}
	out := make(Assignments, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, Assignment{Property: k.Value, Value: v.Value})
	}
	*a = out
	return nil
}

// Op names a step operation.
type Op string

const (
	OpSet     Op = "set"     // set Property of Target to Value
	OpReset   Op = "reset"   // clear the explicit value of an ambient Property
	OpStyle   Op = "style"   // set or clear the style flag named by Property
	OpAdd     Op = "add"     // add Target to Parent
	OpRemove  Op = "remove"  // detach Target from its parent
	OpIndex   Op = "index"   // move Target to position Value among its siblings
	OpCreate  Op = "create"  // create the handles of Target's subtree
	OpDispose Op = "dispose" // dispose Target
	OpSuspend Op = "suspend" // suspend layout on Target
	OpResume  Op = "resume"  // resume layout on Target, performing it unless Value is false
	OpLayout  Op = "layout"  // force a layout pass on Target
)

// Step is one operation applied to the tree.
type Step struct {
	Op       Op     `yaml:"op"`
	Target   string `yaml:"target"`
	Property string `yaml:"property,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Parent   string `yaml:"parent,omitempty"`
}

func (s Step) String() string {
	switch {
	case s.Property != "" && s.Value == "":
		return fmt.Sprintf("%s %s.%s", s.Op, s.Target, s.Property)
	case s.Property != "":
		return fmt.Sprintf("%s %s.%s=%s", s.Op, s.Target, s.Property, s.Value)
	case s.Parent != "":
		return fmt.Sprintf("%s %s -> %s", s.Op, s.Target, s.Parent)
	case s.Value != "":
		return fmt.Sprintf("%s %s %s", s.Op, s.Target, s.Value)
	default:
		return fmt.Sprintf("%s %s", s.Op, s.Target)
	}
}

// ErrInvalidScenario is wrapped by every error caused by the scenario
// document itself rather than by the controls.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario document. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if len(s.Controls) == 0 {
		return nil, fmt.Errorf("%w: no controls declared", ErrInvalidScenario)
	}
	return &s, nil
}

package script

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/ssa-build/errors"
)

// Program is a parsed construction script.
type Program struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step carries exactly one directive. Parse rejects steps with zero or
// several directives set.
type Step struct {
	Block string   `yaml:"block,omitempty"`
	Edge  *Edge    `yaml:"edge,omitempty"`
	Write *VarRef  `yaml:"write,omitempty"`
	Read  *VarRef  `yaml:"read,omitempty"`
	Seal  NameList `yaml:"seal,omitempty"`
}

// Edge declares a predecessor edge: To gains From as a predecessor.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// VarRef names a variable access in a block. For writes, Op names the
// operation created as the written value; it defaults to "def".
type VarRef struct {
	Var   string `yaml:"var"`
	Block string `yaml:"block"`
	Op    string `yaml:"op,omitempty"`
}

// NameList accepts either a single YAML scalar or a sequence of names.
type NameList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*n = NameList{s}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*n = NameList(names)
		return nil
	default:
		return fmt.Errorf("line %d: seal expects a block name or list of names", node.Line)
	}
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Program, error) {
	var p Program
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.ParseFailed("script", err)
	}
	if len(p.Steps) == 0 {
		return nil, errors.InvalidInput(errors.PhaseParse, "script has no steps")
	}
	for i, step := range p.Steps {
		if err := step.validate(); err != nil {
			return nil, errors.InvalidInput(errors.PhaseParse,
				fmt.Sprintf("step %d: %v", i+1, err))
		}
	}
	return &p, nil
}

func (s Step) validate() error {
	n := 0
	if s.Block != "" {
		n++
	}
	if s.Edge != nil {
		n++
	}
	if s.Write != nil {
		n++
	}
	if s.Read != nil {
		n++
	}
	if len(s.Seal) > 0 {
		n++
	}
	if n != 1 {
		return fmt.Errorf("want exactly one directive per step, got %d", n)
	}
	if s.Edge != nil && (s.Edge.From == "" || s.Edge.To == "") {
		return fmt.Errorf("edge needs both from and to")
	}
	for _, ref := range []*VarRef{s.Write, s.Read} {
		if ref != nil && (ref.Var == "" || ref.Block == "") {
			return fmt.Errorf("variable access needs var and block")
		}
	}
	return nil
}

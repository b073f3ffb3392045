package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CategoryAll is the category sentinel meaning "no category restriction".
const CategoryAll = "all"

// AnyOption is the sentinel option ID that leads every questionnaire axis.
// An answer set to AnyOption (or left empty) does not narrow results.
const AnyOption = "any"

// Axis identifies one dimension of the match questionnaire.
type Axis string

// Questionnaire axes.
const (
	AxisProcessor  Axis = "processor"
	AxisMemory     Axis = "memory"
	AxisExperience Axis = "experience"
	AxisObjective  Axis = "objective"
	AxisGraphics   Axis = "graphics"
)

// Axes lists every questionnaire axis in display order.
var Axes = []Axis{AxisProcessor, AxisMemory, AxisExperience, AxisObjective, AxisGraphics}

// Ordinal reports whether the axis compares ranked tiers (true) or
// tests set membership (false).
func (a Axis) Ordinal() bool {
	switch a {
	case AxisProcessor, AxisMemory, AxisGraphics:
		return true
	}
	return false
}

// Distro is one Linux distribution record in the catalog.
type Distro struct {
	ID           string       `yaml:"id" json:"id" validate:"required,slug"`
	Name         string       `yaml:"name" json:"name" validate:"required"`
	Subtitle     string       `yaml:"subtitle" json:"subtitle" validate:"required"`
	Description  string       `yaml:"description" json:"description" validate:"required"`
	Logo         string       `yaml:"logo" json:"logo" validate:"required,url"`
	Categories   []string     `yaml:"categories" json:"categories" validate:"dive,required"`
	Requirements Requirements `yaml:"requirements" json:"requirements"`
	Experience   []string     `yaml:"experience" json:"experience" validate:"dive,required"`
	Objectives   []string     `yaml:"objectives" json:"objectives" validate:"dive,required"`
}

// Requirements holds the minimum tiers a distro needs on each ordinal axis.
// A distro may list several minimums, one per tier family (e.g. x86 and arm).
type Requirements struct {
	Processor TierRefs `yaml:"processor" json:"processor" validate:"dive,required"`
	Memory    TierRefs `yaml:"memory" json:"memory" validate:"dive,required"`
	Graphics  TierRefs `yaml:"graphics" json:"graphics" validate:"dive,required"`
}

// HasCategory reports whether tag is one of the distro's categories.
// Matching is exact; "Gaming" does not match "Gaming PC".
func (d *Distro) HasCategory(tag string) bool {
	for _, c := range d.Categories {
		if c == tag {
			return true
		}
	}
	return false
}

// Attribute returns the distro's option IDs for an axis: minimum tiers on
// ordinal axes, suitable options on set axes.
func (d *Distro) Attribute(axis Axis) []string {
	switch axis {
	case AxisProcessor:
		return d.Requirements.Processor
	case AxisMemory:
		return d.Requirements.Memory
	case AxisGraphics:
		return d.Requirements.Graphics
	case AxisExperience:
		return d.Experience
	case AxisObjective:
		return d.Objectives
	}
	return nil
}

// clone returns a deep copy so callers never share slices with the store.
func (d Distro) clone() Distro {
	d.Categories = cloneStrings(d.Categories)
	d.Experience = cloneStrings(d.Experience)
	d.Objectives = cloneStrings(d.Objectives)
	d.Requirements.Processor = cloneStrings(d.Requirements.Processor)
	d.Requirements.Memory = cloneStrings(d.Requirements.Memory)
	d.Requirements.Graphics = cloneStrings(d.Requirements.Graphics)
	return d
}

func cloneStrings[S ~[]string](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}

// TierRefs is a list of tier option IDs. In YAML it may be written as a
// single scalar ("4gb") or as a sequence ([basic-64bit, arm64]).
type TierRefs []string

// UnmarshalYAML accepts both scalar and sequence nodes.
func (t *TierRefs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			*t = nil
			return nil
		}
		*t = TierRefs{node.Value}
		return nil
	case yaml.SequenceNode:
		var refs []string
		if err := node.Decode(&refs); err != nil {
			return err
		}
		*t = refs
		return nil
	}
	return fmt.Errorf("line %d: tier reference must be a string or a list", node.Line)
}

// Option is one selectable value on a questionnaire axis.
type Option struct {
	ID string `yaml:"id" json:"id" validate:"required"`
	// Rank orders options on ordinal axes; higher is more capable.
	Rank int `yaml:"rank" json:"rank,omitempty" validate:"gte=0"`
	// Family partitions an ordinal axis; ranks only compare within a family.
	Family string `yaml:"family" json:"family,omitempty"`
}

// Query is a browse request: free text plus one category.
type Query struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Answer is one questionnaire submission. Empty fields mean AnyOption.
type Answer struct {
	Processor  string `json:"processor"`
	Memory     string `json:"memory"`
	Experience string `json:"experience"`
	Objective  string `json:"objective"`
	Graphics   string `json:"graphics"`
}

// Value returns the answer's option ID for an axis.
func (a Answer) Value(axis Axis) string {
	switch axis {
	case AxisProcessor:
		return a.Processor
	case AxisMemory:
		return a.Memory
	case AxisExperience:
		return a.Experience
	case AxisObjective:
		return a.Objective
	case AxisGraphics:
		return a.Graphics
	}
	return ""
}

// IsAny reports whether an option ID is the "do not narrow" sentinel.
func IsAny(option string) bool {
	return option == "" || option == AnyOption
}

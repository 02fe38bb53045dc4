package schema

import (
	"fmt"
	"sort"
)

// Option is one selectable choice belonging to a dropdown, radio or
// checkbox field.
type Option struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Position  int    `json:"-"`
	IsDefault bool   `json:"isDefault"`
}

// OptionSet holds the options of a single field and enforces per-field
// uniqueness of value and position.
type OptionSet struct {
	fieldType FieldType
	items     []Option
}

func NewOptionSet(fieldType FieldType) *OptionSet {
	return &OptionSet{fieldType: fieldType}
}

// Add appends an option, rejecting options on non-selectable field types
// and value/position collisions within the set.
func (s *OptionSet) Add(option Option) error {
	if !s.fieldType.Selectable() {
		return newIssue(CodeUnsupportedFieldType, "", "",
			fmt.Sprintf("options are not supported for %s fields", s.fieldType))
	}
	for _, existing := range s.items {
		if existing.Value == option.Value {
			return newIssue(CodeDuplicateValue, "", option.Value,
				fmt.Sprintf("option value %q already exists", option.Value))
		}
		if existing.Position == option.Position {
			return newIssue(CodeDuplicatePosition, "", option.Value,
				fmt.Sprintf("option position %d already taken by %q", option.Position, existing.Value))
		}
	}
	s.items = append(s.items, option)
	return nil
}

// ValidateDefaults enforces default-selection cardinality: single-select
// types allow at most one default, checkbox allows any number.
func (s *OptionSet) ValidateDefaults() error {
	if s.fieldType == TypeCheckbox {
		return nil
	}
	defaults := 0
	for _, option := range s.items {
		if option.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return newIssue(CodeMultipleDefaultsNotAllowed, "", "",
			fmt.Sprintf("only one default option is allowed for %s fields", s.fieldType))
	}
	return nil
}

// OrderedList returns the options sorted ascending by position. Positions
// are unique by construction; insertion order breaks ties if they slip in.
func (s *OptionSet) OrderedList() []Option {
	ordered := make([]Option, len(s.items))
	copy(ordered, s.items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	return ordered
}

func (s *OptionSet) Len() int {
	return len(s.items)
}

// DefaultValues returns the values flagged as default, in position order.
func (s *OptionSet) DefaultValues() []string {
	var values []string
	for _, option := range s.OrderedList() {
		if option.IsDefault {
			values = append(values, option.Value)
		}
	}
	return values
}

package schema

import "fmt"

type FieldType string

const (
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeTextarea FieldType = "textarea"
	TypeDropdown FieldType = "dropdown"
	TypeRadio    FieldType = "radio"
	TypeCheckbox FieldType = "checkbox"
	TypeRating   FieldType = "rating"
	TypeBoolean  FieldType = "boolean"
	TypeEmail    FieldType = "email"
	TypeDate     FieldType = "date"
)

// Selectable reports whether the type owns an option list.
func (t FieldType) Selectable() bool {
	switch t {
	case TypeDropdown, TypeRadio, TypeCheckbox:
		return true
	}
	return false
}

type valueKind int

const (
	kindInt valueKind = iota
	kindNumber
	kindString
	kindBool
	kindDate
)

func (k valueKind) String() string {
	switch k {
	case kindInt:
		return "integer"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindBool:
		return "boolean"
	case kindDate:
		return "date (YYYY-MM-DD)"
	}
	return "unknown"
}

type keyRule struct {
	kind valueKind
	// enum restricts string values; empty means any.
	enum []string
	// intEnum restricts integer values; empty means any.
	intEnum []int
	// positive rejects numeric values <= 0 (number "step").
	positive bool
}

// orderedPair names two bounds that must satisfy min < max when both present.
type orderedPair struct {
	minKey string
	maxKey string
}

type typeRules struct {
	keys  map[string]keyRule
	pairs []orderedPair
}

// configWhitelist is the closed attribute table: the exact set of config
// keys each of the ten field types accepts, the JSON kind each value must
// carry, and the min/max relationships between bounds.
var configWhitelist = map[FieldType]typeRules{
	TypeText: {
		keys: map[string]keyRule{
			"minLength": {kind: kindInt},
			"maxLength": {kind: kindInt},
			"pattern":   {kind: kindString},
			"inputMode": {kind: kindString, enum: []string{"text", "email", "tel", "url"}},
			"prefix":    {kind: kindString},
			"suffix":    {kind: kindString},
		},
		pairs: []orderedPair{{minKey: "minLength", maxKey: "maxLength"}},
	},
	TypeNumber: {
		keys: map[string]keyRule{
			"min":    {kind: kindNumber},
			"max":    {kind: kindNumber},
			"step":   {kind: kindNumber, positive: true},
			"prefix": {kind: kindString},
			"suffix": {kind: kindString},
			"unit":   {kind: kindString},
		},
		pairs: []orderedPair{{minKey: "min", maxKey: "max"}},
	},
	TypeTextarea: {
		keys: map[string]keyRule{
			"rows":       {kind: kindInt},
			"minLength":  {kind: kindInt},
			"maxLength":  {kind: kindInt},
			"autoResize": {kind: kindBool},
		},
		pairs: []orderedPair{{minKey: "minLength", maxKey: "maxLength"}},
	},
	TypeDropdown: {
		keys: map[string]keyRule{
			"allowMultiple": {kind: kindBool},
			"allowOther":    {kind: kindBool},
		},
	},
	TypeRadio: {
		keys: map[string]keyRule{
			"allowOther": {kind: kindBool},
		},
	},
	TypeCheckbox: {
		keys: map[string]keyRule{
			"minSelections": {kind: kindInt},
			"maxSelections": {kind: kindInt},
			"allowOther":    {kind: kindBool},
		},
		pairs: []orderedPair{{minKey: "minSelections", maxKey: "maxSelections"}},
	},
	TypeRating: {
		keys: map[string]keyRule{
			"scale":    {kind: kindInt, intEnum: []int{5, 10}},
			"style":    {kind: kindString, enum: []string{"stars", "numeric", "emoji"}},
			"minLabel": {kind: kindString},
			"maxLabel": {kind: kindString},
		},
	},
	TypeBoolean: {
		keys: map[string]keyRule{
			"trueLabel":  {kind: kindString},
			"falseLabel": {kind: kindString},
			"style":      {kind: kindString, enum: []string{"checkbox", "toggle", "radio"}},
		},
	},
	TypeEmail: {
		keys: map[string]keyRule{
			"confirmEmail": {kind: kindBool},
		},
	},
	TypeDate: {
		keys: map[string]keyRule{
			"minDate": {kind: kindDate},
			"maxDate": {kind: kindDate},
			"format":  {kind: kindString},
		},
		pairs: []orderedPair{{minKey: "minDate", maxKey: "maxDate"}},
	},
}

// KnownType reports whether the tag names one of the ten field types.
func KnownType(t FieldType) bool {
	_, ok := configWhitelist[t]
	return ok
}

// rulesFor resolves the whitelist entry for a type tag.
func rulesFor(t FieldType) (typeRules, error) {
	rules, ok := configWhitelist[t]
	if !ok {
		return typeRules{}, newIssue(CodeUnknownFieldType, "", "", fmt.Sprintf("unknown field type %q", t))
	}
	return rules, nil
}

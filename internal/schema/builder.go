package schema

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// FormInput is the form metadata the builder snapshots into the document.
type FormInput struct {
	Name        string
	Slug        string
	Description string
	Status      string
}

// FieldInput is one field definition to validate and serialize.
type FieldInput struct {
	Slug         string
	Type         FieldType
	Label        string
	Question     string
	Required     bool
	HelpText     string
	Placeholder  string
	DefaultValue string
	Position     int
	Config       map[string]any
}

// FormMeta mirrors the "form" object of the generated document.
type FormMeta struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// FieldPayload is one entry of the document's "fields" array.
type FieldPayload struct {
	ID           string         `json:"id"`
	Type         FieldType      `json:"type"`
	Label        string         `json:"label"`
	Question     *string        `json:"question"`
	Required     bool           `json:"required"`
	HelpText     *string        `json:"helpText"`
	Placeholder  *string        `json:"placeholder"`
	DefaultValue *string        `json:"defaultValue"`
	Position     int            `json:"position"`
	Config       map[string]any `json:"config"`
}

// Document is the generated schema artifact cached on the form record and
// served verbatim by the read endpoint.
type Document struct {
	Form   FormMeta       `json:"form"`
	Fields []FieldPayload `json:"fields"`
}

// Encode produces the canonical JSON bytes of the document. Map keys are
// sorted by the encoder, so identical input always yields identical bytes.
func (d Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}

const StatusPublished = "published"

// Build validates every field of a form and assembles the schema document.
// Fields are ordered by position (slug breaks ties); per-field validation
// failures are aggregated into one *ValidationError instead of stopping at
// the first, and no partial document is produced. Pure function of its
// inputs.
func Build(form FormInput, fields []FieldInput, optionsByField map[string][]Option) (Document, error) {
	var issues []Issue

	ordered := make([]FieldInput, len(fields))
	copy(ordered, fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Position != ordered[j].Position {
			return ordered[i].Position < ordered[j].Position
		}
		return ordered[i].Slug < ordered[j].Slug
	})

	seenSlugs := make(map[string]bool, len(ordered))
	seenPositions := make(map[int]string, len(ordered))
	for _, field := range ordered {
		if seenSlugs[field.Slug] {
			issues = append(issues, Issue{
				Field:   field.Slug,
				Code:    CodeDuplicateSlug,
				Message: fmt.Sprintf("field slug %q is used more than once", field.Slug),
			})
		}
		seenSlugs[field.Slug] = true
		if other, taken := seenPositions[field.Position]; taken {
			issues = append(issues, Issue{
				Field:   field.Slug,
				Code:    CodeDuplicatePosition,
				Message: fmt.Sprintf("field position %d already taken by %q", field.Position, other),
			})
		} else {
			seenPositions[field.Position] = field.Slug
		}
	}

	requireOptions := form.Status == StatusPublished
	payloads := make([]FieldPayload, 0, len(ordered))

	for _, field := range ordered {
		options, err := collectOptions(field.Type, optionsByField[field.Slug])
		if err != nil {
			mergeIssues(&issues, field.Slug, err)
			continue
		}
		config, err := ValidateConfig(field.Type, field.Config, options, requireOptions)
		if err != nil {
			mergeIssues(&issues, field.Slug, err)
			continue
		}
		payloads = append(payloads, FieldPayload{
			ID:           field.Slug,
			Type:         field.Type,
			Label:        field.Label,
			Question:     nullable(field.Question),
			Required:     field.Required,
			HelpText:     nullable(field.HelpText),
			Placeholder:  nullable(field.Placeholder),
			DefaultValue: nullable(field.DefaultValue),
			Position:     field.Position,
			Config:       config,
		})
	}

	if len(issues) > 0 {
		return Document{}, &ValidationError{Issues: issues}
	}

	return Document{
		Form: FormMeta{
			Name:        form.Name,
			Slug:        form.Slug,
			Description: form.Description,
			Status:      form.Status,
		},
		Fields: payloads,
	}, nil
}

// collectOptions loads a field's options into an OptionSet, surfacing
// duplicate values/positions and options on non-selectable types.
func collectOptions(fieldType FieldType, options []Option) (*OptionSet, error) {
	set := NewOptionSet(fieldType)
	var issues []Issue
	for _, option := range options {
		if err := set.Add(option); err != nil {
			mergeIssues(&issues, "", err)
		}
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return set, nil
}

// nullable maps empty strings to JSON null, matching the document shape.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

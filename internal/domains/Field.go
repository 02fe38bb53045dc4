package domains

import (
	"encoding/json"
	"fmt"
	"time"

	"formbuilder/internal/schema"
)

type Field struct {
	ID           int64           `json:"id"`
	FormID       int64           `json:"form_id"`
	Slug         string          `json:"slug"`
	Label        string          `json:"label"`
	Question     string          `json:"question"`
	FieldType    string          `json:"field_type"`
	Position     int             `json:"position"`
	Required     bool            `json:"required"`
	HelpText     string          `json:"help_text"`
	Placeholder  string          `json:"placeholder"`
	DefaultValue string          `json:"default_value"`
	Config       json.RawMessage `json:"config"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type FieldCreate struct {
	Slug         string          `json:"slug"`
	Label        string          `json:"label"`
	Question     string          `json:"question"`
	FieldType    string          `json:"field_type"`
	Position     int             `json:"position"`
	Required     bool            `json:"required"`
	HelpText     string          `json:"help_text"`
	Placeholder  string          `json:"placeholder"`
	DefaultValue string          `json:"default_value"`
	Config       json.RawMessage `json:"config"`
}

type FieldUpdate struct {
	Slug         *string         `json:"slug,omitempty"`
	Label        *string         `json:"label,omitempty"`
	Question     *string         `json:"question,omitempty"`
	FieldType    *string         `json:"field_type,omitempty"`
	Position     *int            `json:"position,omitempty"`
	Required     *bool           `json:"required,omitempty"`
	HelpText     *string         `json:"help_text,omitempty"`
	Placeholder  *string         `json:"placeholder,omitempty"`
	DefaultValue *string         `json:"default_value,omitempty"`
	Config       json.RawMessage `json:"config,omitempty"`
}

// SchemaInput converts the stored field into the builder's input shape,
// decoding the JSONB config into a mapping.
func (f Field) SchemaInput() (schema.FieldInput, error) {
	config := map[string]any{}
	if len(f.Config) > 0 {
		if err := json.Unmarshal(f.Config, &config); err != nil {
			return schema.FieldInput{}, fmt.Errorf("decode config for field %q: %w", f.Slug, err)
		}
	}
	return schema.FieldInput{
		Slug:         f.Slug,
		Type:         schema.FieldType(f.FieldType),
		Label:        f.Label,
		Question:     f.Question,
		Required:     f.Required,
		HelpText:     f.HelpText,
		Placeholder:  f.Placeholder,
		DefaultValue: f.DefaultValue,
		Position:     f.Position,
		Config:       config,
	}, nil
}

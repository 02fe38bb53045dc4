package domains

import (
	"encoding/json"
	"time"

	"formbuilder/internal/schema"
)

type Form struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	JSONSchema  json.RawMessage `json:"json_schema,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type FormCreate struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type FormUpdate struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// FormState is the full materialized definition of one form: the record,
// its fields and every field's options. The schema builder consumes
// exactly this shape.
type FormState struct {
	Form    Form
	Fields  []Field
	Options map[int64][]FieldOption
}

// WriteResult reports a persisted admin write together with the outcome
// of the schema regeneration it triggered. Schema and Issues are mutually
// exclusive: a validation failure keeps the previous cached schema.
type WriteResult struct {
	Form   Form            `json:"form"`
	Schema json.RawMessage `json:"schema,omitempty"`
	Issues []schema.Issue  `json:"issues,omitempty"`
}

func (f Form) SchemaInput() schema.FormInput {
	return schema.FormInput{
		Name:        f.Name,
		Slug:        f.Slug,
		Description: f.Description,
		Status:      f.Status,
	}
}

package domains

import "formbuilder/internal/schema"

type FieldOption struct {
	ID        int64  `json:"id"`
	FieldID   int64  `json:"field_id"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	Position  int    `json:"position"`
	IsDefault bool   `json:"is_default"`
}

type OptionCreate struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Position  int    `json:"position"`
	IsDefault bool   `json:"is_default"`
}

type OptionUpdate struct {
	Value     *string `json:"value,omitempty"`
	Label     *string `json:"label,omitempty"`
	Position  *int    `json:"position,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

func (o FieldOption) SchemaInput() schema.Option {
	return schema.Option{
		Value:     o.Value,
		Label:     o.Label,
		Position:  o.Position,
		IsDefault: o.IsDefault,
	}
}

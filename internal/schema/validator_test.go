package schema

import (
	"testing"
)

func TestValidateConfigKeepsWhitelistedKeys(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		config    map[string]any
	}{
		{"text bounds and pattern", TypeText, map[string]any{
			"minLength": float64(2), "maxLength": float64(100), "pattern": "^[a-z]+$",
			"inputMode": "email", "prefix": ">", "suffix": "<",
		}},
		{"number full config", TypeNumber, map[string]any{
			"min": float64(0), "max": float64(10), "step": float64(0.5), "unit": "kg",
		}},
		{"textarea", TypeTextarea, map[string]any{
			"rows": float64(4), "minLength": float64(1), "maxLength": float64(500), "autoResize": true,
		}},
		{"rating", TypeRating, map[string]any{
			"scale": float64(5), "style": "stars", "minLabel": "Poor", "maxLabel": "Great",
		}},
		{"boolean", TypeBoolean, map[string]any{
			"trueLabel": "Yes", "falseLabel": "No", "style": "toggle",
		}},
		{"email", TypeEmail, map[string]any{"confirmEmail": true}},
		{"date window", TypeDate, map[string]any{
			"minDate": "2024-01-01", "maxDate": "2024-12-31", "format": "YYYY-MM-DD",
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sanitized, err := ValidateConfig(tc.fieldType, tc.config, nil, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(sanitized) != len(tc.config) {
				t.Fatalf("sanitized has %d keys, want %d: %v", len(sanitized), len(tc.config), sanitized)
			}
			for key := range tc.config {
				if _, ok := sanitized[key]; !ok {
					t.Fatalf("missing key %q in sanitized config", key)
				}
			}
		})
	}
}

func TestValidateConfigUnknownKey(t *testing.T) {
	tests := []struct {
		fieldType FieldType
		key       string
	}{
		{TypeText, "rows"},
		{TypeNumber, "minLength"},
		{TypeEmail, "pattern"},
		{TypeRadio, "allowMultiple"},
		{TypeBoolean, "scale"},
	}
	for _, tc := range tests {
		_, err := ValidateConfig(tc.fieldType, map[string]any{tc.key: float64(1)}, nil, false)
		if err == nil {
			t.Fatalf("%s/%s: expected UnknownConfigKey", tc.fieldType, tc.key)
		}
		assertCode(t, err, CodeUnknownConfigKey)
	}
}

func TestValidateConfigUnknownFieldType(t *testing.T) {
	_, err := ValidateConfig("color", map[string]any{}, nil, false)
	if err == nil {
		t.Fatal("expected error for unknown field type")
	}
	assertCode(t, err, CodeUnknownFieldType)
}

func TestValidateConfigInvalidRange(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		config    map[string]any
	}{
		{"text min greater", TypeText, map[string]any{"minLength": float64(10), "maxLength": float64(5)}},
		{"text min equal", TypeText, map[string]any{"minLength": float64(5), "maxLength": float64(5)}},
		{"number inverted", TypeNumber, map[string]any{"min": float64(10), "max": float64(5)}},
		{"number equal", TypeNumber, map[string]any{"min": float64(5), "max": float64(5)}},
		{"textarea inverted", TypeTextarea, map[string]any{"minLength": float64(3), "maxLength": float64(2)}},
		{"checkbox inverted", TypeCheckbox, map[string]any{"minSelections": float64(4), "maxSelections": float64(2)}},
		{"date inverted", TypeDate, map[string]any{"minDate": "2025-01-01", "maxDate": "2024-01-01"}},
		{"zero step", TypeNumber, map[string]any{"step": float64(0)}},
		{"negative step", TypeNumber, map[string]any{"step": float64(-1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateConfig(tc.fieldType, tc.config, nil, false)
			if err == nil {
				t.Fatal("expected InvalidRange")
			}
			assertCode(t, err, CodeInvalidRange)
		})
	}
}

func TestValidateConfigOneBoundIsFine(t *testing.T) {
	if _, err := ValidateConfig(TypeNumber, map[string]any{"min": float64(10)}, nil, false); err != nil {
		t.Fatalf("single bound should pass: %v", err)
	}
	if _, err := ValidateConfig(TypeText, map[string]any{"maxLength": float64(3)}, nil, false); err != nil {
		t.Fatalf("single bound should pass: %v", err)
	}
}

func TestValidateConfigInvalidEnumValue(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		config    map[string]any
	}{
		{"rating scale", TypeRating, map[string]any{"scale": float64(7)}},
		{"rating style", TypeRating, map[string]any{"style": "hearts"}},
		{"boolean style", TypeBoolean, map[string]any{"style": "slider"}},
		{"text inputMode", TypeText, map[string]any{"inputMode": "numeric"}},
		{"bad date", TypeDate, map[string]any{"minDate": "01/02/2024"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateConfig(tc.fieldType, tc.config, nil, false)
			if err == nil {
				t.Fatal("expected InvalidEnumValue")
			}
			assertCode(t, err, CodeInvalidEnumValue)
		})
	}
}

func TestValidateConfigInvalidValueType(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		config    map[string]any
	}{
		{"string for int", TypeText, map[string]any{"minLength": "2"}},
		{"fraction for int", TypeTextarea, map[string]any{"rows": float64(2.5)}},
		{"number for bool", TypeEmail, map[string]any{"confirmEmail": float64(1)}},
		{"bool for string", TypeBoolean, map[string]any{"trueLabel": true}},
		{"string for number", TypeNumber, map[string]any{"min": "0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateConfig(tc.fieldType, tc.config, nil, false)
			if err == nil {
				t.Fatal("expected InvalidValueType")
			}
			assertCode(t, err, CodeInvalidValueType)
		})
	}
}

func TestValidateConfigAggregatesAllProblems(t *testing.T) {
	_, err := ValidateConfig(TypeText, map[string]any{
		"rows":      float64(2),
		"inputMode": "numeric",
		"minLength": float64(9),
		"maxLength": float64(3),
	}, nil, false)
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	validation := err.(*ValidationError)
	for _, code := range []Code{CodeUnknownConfigKey, CodeInvalidEnumValue, CodeInvalidRange} {
		if !validation.Has(code) {
			t.Fatalf("missing %s in %v", code, validation.Issues)
		}
	}
}

func TestValidateConfigEmbedsOrderedOptions(t *testing.T) {
	set := NewOptionSet(TypeDropdown)
	mustAdd(t, set, Option{Value: "ca", Label: "Canada", Position: 2})
	mustAdd(t, set, Option{Value: "us", Label: "United States", Position: 1, IsDefault: true})

	sanitized, err := ValidateConfig(TypeDropdown, map[string]any{"allowOther": true}, set, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	options, ok := sanitized["options"].([]Option)
	if !ok || len(options) != 2 {
		t.Fatalf("options = %#v, want two ordered entries", sanitized["options"])
	}
	if options[0].Value != "us" || options[1].Value != "ca" {
		t.Fatalf("options out of order: %v", options)
	}
	if sanitized["defaultOption"] != "us" {
		t.Fatalf("defaultOption = %v, want \"us\"", sanitized["defaultOption"])
	}
}

func TestValidateConfigDefaultOptionCardinality(t *testing.T) {
	makeSet := func(fieldType FieldType) *OptionSet {
		set := NewOptionSet(fieldType)
		mustAdd(t, set, Option{Value: "a", Label: "A", Position: 1, IsDefault: true})
		mustAdd(t, set, Option{Value: "b", Label: "B", Position: 2, IsDefault: true})
		return set
	}

	sanitized, err := ValidateConfig(TypeCheckbox, map[string]any{}, makeSet(TypeCheckbox), false)
	if err != nil {
		t.Fatalf("checkbox: %v", err)
	}
	defaults, ok := sanitized["defaultOption"].([]string)
	if !ok || len(defaults) != 2 {
		t.Fatalf("checkbox defaultOption = %#v, want list of two", sanitized["defaultOption"])
	}

	if _, err := ValidateConfig(TypeDropdown, map[string]any{"allowMultiple": true}, makeSet(TypeDropdown), false); err == nil {
		t.Fatal("dropdown with two defaults should fail")
	} else {
		assertCode(t, err, CodeMultipleDefaultsNotAllowed)
	}
}

func TestValidateConfigRequireOptions(t *testing.T) {
	_, err := ValidateConfig(TypeDropdown, map[string]any{}, NewOptionSet(TypeDropdown), true)
	if err == nil {
		t.Fatal("published selectable field without options should fail")
	}
	assertCode(t, err, CodeOptionsRequired)

	if _, err := ValidateConfig(TypeDropdown, map[string]any{}, NewOptionSet(TypeDropdown), false); err != nil {
		t.Fatalf("draft selectable field without options should pass: %v", err)
	}
}

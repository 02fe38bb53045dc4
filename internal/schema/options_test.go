package schema

import (
	"errors"
	"testing"
)

func TestOptionSetRejectsNonSelectableTypes(t *testing.T) {
	for _, fieldType := range []FieldType{TypeText, TypeNumber, TypeTextarea, TypeRating, TypeBoolean, TypeEmail, TypeDate} {
		set := NewOptionSet(fieldType)
		err := set.Add(Option{Value: "a", Label: "A", Position: 1})
		if err == nil {
			t.Fatalf("%s: expected error adding option", fieldType)
		}
		assertCode(t, err, CodeUnsupportedFieldType)
	}
}

func TestOptionSetDuplicateValue(t *testing.T) {
	set := NewOptionSet(TypeDropdown)
	if err := set.Add(Option{Value: "us", Label: "United States", Position: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := set.Add(Option{Value: "us", Label: "USA", Position: 2})
	assertCode(t, err, CodeDuplicateValue)
}

func TestOptionSetDuplicatePosition(t *testing.T) {
	set := NewOptionSet(TypeRadio)
	if err := set.Add(Option{Value: "yes", Label: "Yes", Position: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := set.Add(Option{Value: "no", Label: "No", Position: 1})
	assertCode(t, err, CodeDuplicatePosition)
}

func TestValidateDefaultsSingleSelect(t *testing.T) {
	for _, fieldType := range []FieldType{TypeDropdown, TypeRadio} {
		set := NewOptionSet(fieldType)
		mustAdd(t, set, Option{Value: "a", Label: "A", Position: 1, IsDefault: true})
		mustAdd(t, set, Option{Value: "b", Label: "B", Position: 2, IsDefault: true})
		err := set.ValidateDefaults()
		if err == nil {
			t.Fatalf("%s: expected multiple defaults to fail", fieldType)
		}
		assertCode(t, err, CodeMultipleDefaultsNotAllowed)
	}
}

func TestValidateDefaultsCheckboxAllowsMany(t *testing.T) {
	set := NewOptionSet(TypeCheckbox)
	mustAdd(t, set, Option{Value: "a", Label: "A", Position: 1, IsDefault: true})
	mustAdd(t, set, Option{Value: "b", Label: "B", Position: 2, IsDefault: true})
	mustAdd(t, set, Option{Value: "c", Label: "C", Position: 3, IsDefault: true})
	if err := set.ValidateDefaults(); err != nil {
		t.Fatalf("checkbox defaults should be unrestricted: %v", err)
	}
}

func TestOrderedListSortsByPosition(t *testing.T) {
	set := NewOptionSet(TypeDropdown)
	mustAdd(t, set, Option{Value: "third", Label: "3", Position: 3})
	mustAdd(t, set, Option{Value: "first", Label: "1", Position: 1})
	mustAdd(t, set, Option{Value: "second", Label: "2", Position: 2})

	var got []string
	for _, option := range set.OrderedList() {
		got = append(got, option.Value)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordered list = %v, want %v", got, want)
		}
	}
}

func TestDefaultValuesFollowPositionOrder(t *testing.T) {
	set := NewOptionSet(TypeCheckbox)
	mustAdd(t, set, Option{Value: "b", Label: "B", Position: 2, IsDefault: true})
	mustAdd(t, set, Option{Value: "a", Label: "A", Position: 1, IsDefault: true})
	mustAdd(t, set, Option{Value: "c", Label: "C", Position: 3})

	defaults := set.DefaultValues()
	if len(defaults) != 2 || defaults[0] != "a" || defaults[1] != "b" {
		t.Fatalf("defaults = %v, want [a b]", defaults)
	}
}

func mustAdd(t *testing.T, set *OptionSet, option Option) {
	t.Helper()
	if err := set.Add(option); err != nil {
		t.Fatalf("add option %q: %v", option.Value, err)
	}
}

func assertCode(t *testing.T, err error, code Code) {
	t.Helper()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if !validation.Has(code) {
		t.Fatalf("expected code %s in %v", code, validation.Issues)
	}
}

package schema

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateConfig checks one field's configuration mapping against the
// attribute whitelist for its type and returns the sanitized config:
// only whitelisted keys survive, each normalized to its declared kind.
// For selectable types the ordered option list and a defaultOption
// summary are embedded under the returned config. Pure function; every
// problem found is aggregated into a single *ValidationError.
func ValidateConfig(fieldType FieldType, config map[string]any, options *OptionSet, requireOptions bool) (map[string]any, error) {
	rules, err := rulesFor(fieldType)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	sanitized := make(map[string]any, len(config))

	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rule, allowed := rules.keys[key]
		if !allowed {
			issues = append(issues, Issue{
				Key:     key,
				Code:    CodeUnknownConfigKey,
				Message: fmt.Sprintf("unsupported config key %q for %s fields", key, fieldType),
			})
			continue
		}
		value, err := normalizeValue(key, rule, config[key])
		if err != nil {
			mergeIssues(&issues, "", err)
			continue
		}
		sanitized[key] = value
	}

	for _, pair := range rules.pairs {
		if err := checkOrderedPair(sanitized, pair); err != nil {
			mergeIssues(&issues, "", err)
		}
	}

	if fieldType.Selectable() {
		if options == nil {
			options = NewOptionSet(fieldType)
		}
		if err := options.ValidateDefaults(); err != nil {
			mergeIssues(&issues, "", err)
		}
		if options.Len() == 0 && requireOptions {
			issues = append(issues, Issue{
				Code:    CodeOptionsRequired,
				Message: "at least one option is required before publishing",
			})
		}
		if options.Len() > 0 {
			sanitized["options"] = options.OrderedList()
			if defaults := options.DefaultValues(); len(defaults) > 0 {
				if multiSelect(fieldType, sanitized) {
					sanitized["defaultOption"] = defaults
				} else {
					sanitized["defaultOption"] = defaults[0]
				}
			}
		}
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return sanitized, nil
}

// multiSelect reports whether defaults form a list: checkbox always,
// dropdown only when allowMultiple is set.
func multiSelect(fieldType FieldType, config map[string]any) bool {
	if fieldType == TypeCheckbox {
		return true
	}
	if fieldType == TypeDropdown {
		if allow, ok := config["allowMultiple"].(bool); ok {
			return allow
		}
	}
	return false
}

func normalizeValue(key string, rule keyRule, raw any) (any, error) {
	switch rule.kind {
	case kindInt:
		value, ok := asInt(raw)
		if !ok {
			return nil, typeIssue(key, rule, raw)
		}
		if len(rule.intEnum) > 0 && !containsInt(rule.intEnum, value) {
			return nil, newIssue(CodeInvalidEnumValue, "", key,
				fmt.Sprintf("%s must be one of %v", key, rule.intEnum))
		}
		return value, nil
	case kindNumber:
		value, ok := asFloat(raw)
		if !ok {
			return nil, typeIssue(key, rule, raw)
		}
		if rule.positive && value <= 0 {
			return nil, newIssue(CodeInvalidRange, "", key,
				fmt.Sprintf("%s must be greater than zero", key))
		}
		return value, nil
	case kindString:
		value, ok := raw.(string)
		if !ok {
			return nil, typeIssue(key, rule, raw)
		}
		if len(rule.enum) > 0 && !containsString(rule.enum, value) {
			return nil, newIssue(CodeInvalidEnumValue, "", key,
				fmt.Sprintf("%s must be one of %v", key, rule.enum))
		}
		return value, nil
	case kindBool:
		value, ok := raw.(bool)
		if !ok {
			return nil, typeIssue(key, rule, raw)
		}
		return value, nil
	case kindDate:
		value, ok := raw.(string)
		if !ok {
			return nil, typeIssue(key, rule, raw)
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			return nil, newIssue(CodeInvalidEnumValue, "", key,
				fmt.Sprintf("%s must be a date in YYYY-MM-DD form", key))
		}
		return value, nil
	}
	return nil, typeIssue(key, rule, raw)
}

// checkOrderedPair enforces min < max when both bounds are present in the
// sanitized config. Dates compare lexically, which matches chronological
// order for the YYYY-MM-DD layout.
func checkOrderedPair(sanitized map[string]any, pair orderedPair) error {
	minRaw, minOK := sanitized[pair.minKey]
	maxRaw, maxOK := sanitized[pair.maxKey]
	if !minOK || !maxOK {
		return nil
	}

	inOrder := true
	switch minValue := minRaw.(type) {
	case int:
		inOrder = minValue < maxRaw.(int)
	case float64:
		inOrder = minValue < maxRaw.(float64)
	case string:
		inOrder = minValue < maxRaw.(string)
	}
	if !inOrder {
		return newIssue(CodeInvalidRange, "", pair.minKey,
			fmt.Sprintf("%s must be less than %s", pair.minKey, pair.maxKey))
	}
	return nil
}

func typeIssue(key string, rule keyRule, raw any) *ValidationError {
	return newIssue(CodeInvalidValueType, "", key,
		fmt.Sprintf("%s must be a %s, got %T", key, rule.kind, raw))
}

func asInt(raw any) (int, bool) {
	switch value := raw.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return int(value), true
	}
	return 0, false
}

func asFloat(raw any) (float64, bool) {
	switch value := raw.(type) {
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case float64:
		return value, true
	}
	return 0, false
}

func containsString(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}

func containsInt(values []int, needle int) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}

package schema

import "strings"

type Code string

const (
	CodeUnknownFieldType           Code = "UnknownFieldType"
	CodeUnknownConfigKey           Code = "UnknownConfigKey"
	CodeInvalidValueType           Code = "InvalidValueType"
	CodeInvalidRange               Code = "InvalidRange"
	CodeInvalidEnumValue           Code = "InvalidEnumValue"
	CodeUnsupportedFieldType       Code = "UnsupportedFieldType"
	CodeDuplicateValue             Code = "DuplicateValue"
	CodeDuplicatePosition          Code = "DuplicatePosition"
	CodeMultipleDefaultsNotAllowed Code = "MultipleDefaultsNotAllowed"
	CodeDuplicateSlug              Code = "DuplicateSlug"
	CodeOptionsRequired            Code = "OptionsRequired"
)

// Issue is one validation problem, addressed by the field slug and,
// when config-level, the offending key.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Key     string `json:"key,omitempty"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// ValidationError aggregates every issue found in one build pass so the
// administrator sees all problems in a single save attempt.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		var b strings.Builder
		b.WriteString(string(issue.Code))
		if issue.Field != "" {
			b.WriteString(" [")
			b.WriteString(issue.Field)
			if issue.Key != "" {
				b.WriteString(".")
				b.WriteString(issue.Key)
			}
			b.WriteString("]")
		}
		b.WriteString(": ")
		b.WriteString(issue.Message)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "; ")
}

// Has reports whether any collected issue carries the given code.
func (e *ValidationError) Has(code Code) bool {
	for _, issue := range e.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func newIssue(code Code, field, key, message string) *ValidationError {
	return &ValidationError{Issues: []Issue{{Field: field, Key: key, Code: code, Message: message}}}
}

// mergeIssues flattens err into dst, stamping the field slug onto issues
// raised below the field level.
func mergeIssues(dst *[]Issue, field string, err error) {
	validation, ok := err.(*ValidationError)
	if !ok {
		*dst = append(*dst, Issue{Field: field, Code: CodeInvalidValueType, Message: err.Error()})
		return
	}
	for _, issue := range validation.Issues {
		if issue.Field == "" {
			issue.Field = field
		}
		*dst = append(*dst, issue)
	}
}

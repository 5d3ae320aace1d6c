package validate

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is one failed rule on one submitted form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Errors is the ordered list of field errors collected for one submission.
// An empty list means the submission is valid.
type Errors []FieldError

// Has reports whether field failed at least one rule
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Message returns the first message recorded for field, or ""
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Collect flattens the result of validation.ValidateStruct into Errors.
// Fields named in order come first, in that order; anything else follows
// alphabetically so the output is stable across calls.
func Collect(err error, order ...string) Errors {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return Errors{{Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, field := range order {
		if fe, ok := verrs[field]; ok && fe != nil {
			out = append(out, FieldError{Field: field, Message: fe.Error()})
			seen[field] = true
		}
	}

	rest := make([]string, 0)
	for field, fe := range verrs {
		if !seen[field] && fe != nil {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	for _, field := range rest {
		out = append(out, FieldError{Field: field, Message: verrs[field].Error()})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

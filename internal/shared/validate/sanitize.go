package validate

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidDate is returned by ParseDate for input that is not an ISO-8601 date.
var ErrInvalidDate = errors.New("invalid ISO-8601 date")

// markup-significant characters and their entity forms
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Reduced precision dates resolve to their first day. Week dates are not
// accepted.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"20060102",
	"2006-002",
	"2006-01",
	"2006",
}

// Trim removes surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Escape replaces characters that are significant in HTML with entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// ParseDate parses an optional ISO-8601 calendar date.
// Empty input means "not provided" and yields (nil, nil).
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, nil
		}
	}
	return nil, ErrInvalidDate
}

// ISODate is an ozzo rule for optional date fields. Empty values pass.
func ISODate(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if _, err := ParseDate(s); err != nil {
			return validation.NewError("validation_iso_date", message)
		}
		return nil
	})
}

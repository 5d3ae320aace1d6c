package validate

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "Austen", want: "Austen"},
		{name: "tags", in: "<b>bold</b>", want: "&lt;b&gt;bold&lt;&#x2F;b&gt;"},
		{name: "ampersand escaped once", in: "Tom & Jerry", want: "Tom &amp; Jerry"},
		{name: "quotes", in: `"it's"`, want: "&quot;it&#x27;s&quot;"},
		{name: "backslash and backtick", in: "a\\b`c", want: "a&#x5C;b&#96;c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Jane", Trim("  Jane\t\n"))
	assert.Equal(t, "", Trim("   "))
}

func TestParseDate(t *testing.T) {
	t.Run("empty is not provided", func(t *testing.T) {
		d, err := ParseDate("  ")
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("calendar date", func(t *testing.T) {
		d, err := ParseDate("1775-12-16")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, time.Date(1775, time.December, 16, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("timestamp truncated to its day", func(t *testing.T) {
		d, err := ParseDate("2020-02-29T13:45:00Z")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("reduced precision and compact forms", func(t *testing.T) {
		tests := map[string]string{
			"1990":     "1990-01-01",
			"1990-05":  "1990-05-01",
			"19900512": "1990-05-12",
			"1990-132": "1990-05-12",
		}
		for in, want := range tests {
			d, err := ParseDate(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, d.Format("2006-01-02"), in)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("not-a-date")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("impossible calendar date", func(t *testing.T) {
		_, err := ParseDate("2021-02-30")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

type sample struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Zeta string `json:"zeta"`
}

func TestCollect(t *testing.T) {
	s := sample{Name: "", Date: "yesterday", Zeta: ""}
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Zeta, validation.Required.Error("zeta required")),
		validation.Field(&s.Name, validation.Required.Error("name required")),
		validation.Field(&s.Date, ISODate("Invalid date")),
	)
	require.Error(t, err)

	errs := Collect(err, "name", "date")
	require.Len(t, errs, 3)
	assert.Equal(t, FieldError{Field: "name", Message: "name required"}, errs[0])
	assert.Equal(t, FieldError{Field: "date", Message: "Invalid date"}, errs[1])
	assert.Equal(t, FieldError{Field: "zeta", Message: "zeta required"}, errs[2])

	assert.True(t, errs.Has("date"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, "Invalid date", errs.Message("date"))
}

func TestCollect_NilAndForeignErrors(t *testing.T) {
	assert.Nil(t, Collect(nil))

	errs := Collect(errors.New("boom"))
	require.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0].Message)
}

func TestISODate_EmptyPasses(t *testing.T) {
	assert.NoError(t, validation.Validate("", ISODate("Invalid date")))
	assert.NoError(t, validation.Validate("2001-01-01", ISODate("Invalid date")))
	assert.EqualError(t, validation.Validate("01/02/2001", ISODate("Invalid date")), "Invalid date")
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 100

	URLPrefix = "/catalog/author/"
	ListURL   = "/catalog/authors"
	CreateURL = "/catalog/author/create"

	displayDateLayout = "Jan 2, 2006"
	isoDateLayout     = "2006-01-02"
)

// Author is a person who wrote one or more books in the catalog.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death" db:"date_of_death"`
}

// FullName returns "family, first", or "" when either part is missing.
func FullName(first, family string) string {
	if first == "" || family == "" {
		return ""
	}
	return family + ", " + first
}

// Lifespan renders "birth ~ death". A missing birth date reads "Unknown",
// a missing death date is left blank.
func Lifespan(birth, death *time.Time) string {
	from := "Unknown"
	if birth != nil && !birth.IsZero() {
		from = birth.Format(displayDateLayout)
	}

	to := ""
	if death != nil && !death.IsZero() {
		to = death.Format(displayDateLayout)
	}

	return from + " ~ " + to
}

// DateISO formats an optional date as YYYY-MM-DD for date inputs.
func DateISO(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(isoDateLayout)
}

// URL returns the canonical path of the author with the given id.
func URL(id uuid.UUID) string {
	return URLPrefix + id.String()
}

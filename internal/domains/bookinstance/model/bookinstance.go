package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the availability state of one physical copy.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"

	DefaultStatus = StatusMaintenance
)

// Statuses lists every status in the order shown by the form.
var Statuses = []Status{StatusMaintenance, StatusAvailable, StatusLoaned, StatusReserved}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

const (
	URLPrefix = "/catalog/bookinstance/"
	ListURL   = "/catalog/bookinstances"
	CreateURL = "/catalog/bookinstance/create"

	displayDateLayout = "Jan 2, 2006"
	isoDateLayout     = "2006-01-02"
)

// BookInstance is a physical, borrowable copy of a Book.
type BookInstance struct {
	ID      uuid.UUID  `json:"id" db:"id"`
	BookID  uuid.UUID  `json:"book_id" db:"book_id"`
	Imprint string     `json:"imprint" db:"imprint"`
	Status  Status     `json:"status" db:"status"`
	DueBack *time.Time `json:"due_back" db:"due_back"`
}

// Listing is a copy joined with the title of its book.
type Listing struct {
	BookInstance
	BookTitle string `json:"book_title"`
}

// URL returns the canonical path of the copy with the given id.
func URL(id uuid.UUID) string {
	return URLPrefix + id.String()
}

// DueBackFormatted renders the due date as "Jan 2, 2006", or "" when unset.
func DueBackFormatted(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}

// DueBackISO renders the due date as YYYY-MM-DD for date inputs.
func DueBackISO(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(isoDateLayout)
}

package model

import "errors"

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookHasInstances = errors.New("cannot delete book with copies in the catalog")
)

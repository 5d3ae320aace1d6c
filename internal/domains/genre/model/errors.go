package model

import "errors"

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrGenreHasBooks  = errors.New("cannot delete genre with linked books")
	ErrGenreDuplicate = errors.New("genre name already exists")
)

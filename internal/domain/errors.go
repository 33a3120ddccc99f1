package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateID  = errors.New("id already exists")
	ErrInvalidInput = errors.New("invalid input")
)

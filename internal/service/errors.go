package service

import "errors"

var (
	PasswordIncorrect    = errors.New("password incorrect")
	TokenIncorrect       = errors.New("token incorrect")
	ErrFormSlugTaken     = errors.New("form slug already exists")
	ErrFieldConflict     = errors.New("field slug or position already taken in this form")
	ErrOptionConflict    = errors.New("option value or position already taken in this field")
	ErrUnknownFieldType  = errors.New("unknown field type")
	ErrOptionsNotAllowed = errors.New("options are not supported for this field type")
)

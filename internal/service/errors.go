package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrValidationEmptyCategoryName = errors.New("category name must not be empty")
	ErrValidationNoFieldsProvided  = errors.New("category must define at least one field")
	ErrValidationNoCategoryRef     = errors.New("no category reference for entry was given")
)

package domain

import "errors"

var (
	// ErrInvalidInput is returned when a value cannot be read as a calendar date.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownHashMode is returned for a hash mode other than stub or sha256.
	ErrUnknownHashMode = errors.New("unknown hash mode")

	// ErrFixtureDrift is returned when a stored fixture bag differs from the built-in one.
	ErrFixtureDrift = errors.New("fixture drift")
)

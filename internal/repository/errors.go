package repository

import "errors"

// ErrParkNotFound is returned when a referenced park doesn't exist.
var ErrParkNotFound = errors.New("park not found")

// ErrChallengeNotFound is returned when a referenced challenge doesn't exist.
var ErrChallengeNotFound = errors.New("challenge not found")

package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoActiveEvent means no auction is currently running; most of
	// the API surface is meaningless without one.
	ErrNoActiveEvent = errors.New("no active auction event")
	// ErrUnknownAction is returned for auction actions outside the
	// SPIN/BID/SELL/UNSOLD set.
	ErrUnknownAction = errors.New("unknown auction action")
)

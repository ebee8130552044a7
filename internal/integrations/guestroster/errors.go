package guestroster

import "errors"

var (
	// ErrGuestNotFound is returned when the roster has no such guest
	ErrGuestNotFound = errors.New("guestroster client: guest not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("guestroster client: internal error")

	// ErrInvalidResponse is returned when the roster responds with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("guestroster client: invalid response")
)

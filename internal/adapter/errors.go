package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("metamcp bad request")
	ErrUnauthorized        = errors.New("metamcp unauthorized")
	ErrForbidden           = errors.New("metamcp forbidden")
	ErrNotFound            = errors.New("metamcp not found")
	ErrInternalServerError = errors.New("metamcp internal server error")

	// ErrAPIFailure marks a 2xx response whose envelope reports success=false.
	ErrAPIFailure = errors.New("metamcp api failure")

	// ErrNoSessionToken is returned when neither METAMCP_SESSION_TOKEN nor a
	// readable cookie file provides a session token.
	ErrNoSessionToken = errors.New("session token not found: set METAMCP_SESSION_TOKEN or provide a cookie file")
)

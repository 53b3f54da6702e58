package adapter

import "errors"

// Transport-level sentinels produced by mapHTTPError. Endpoint wrappers
// translate ErrNotFound and ErrConflict into the store-level sentinels that
// fit the resource being addressed.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

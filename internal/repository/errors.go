// Package repository holds the MySQL data access code.  Sentinel errors
// defined here let handlers map storage failures onto HTTP status codes
// without looking at driver errors.
package repository

import "errors"

// ErrNotFound is returned when a row does not exist.  Handlers translate
// it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

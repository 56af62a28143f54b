// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. Note that
// ErrNotFound deliberately covers both true absence and ownership
// mismatch: an owner-scoped mutation that matches no row must not reveal
// whether the resource exists under someone else's account.
package repository

import "errors"

// ErrNotFound is returned when a row does not exist or is not visible to
// the requesting artisan. Handlers should translate this into an HTTP 404
// response in both cases.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registration hits the unique index on
// artisans.email. Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

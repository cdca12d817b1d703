// Package store owns every entity collection in memory and is the only
// writer of stock values. Sentinel errors defined here let handlers
// distinguish failure scenarios: not-found errors map to 404 (or to a
// field-level validation error when the reference came from a request
// body), conflict errors to 409, and ErrDataIntegrity signals a broken
// internal reference that should never occur given the store's write-time
// checks — handlers log it loudly and answer with a generic 500.
package store

import "errors"

// ErrUserNotFound is returned when a user id or username resolves to nothing.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when registration collides with an
// existing login name.
var ErrUsernameExists = errors.New("username already exists")

// ErrCategoryNotFound is returned when a category id resolves to nothing.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryCodeExists is returned when category creation collides with
// an existing unique code.
var ErrCategoryCodeExists = errors.New("category code already exists")

// ErrEquipmentNotFound is returned when an equipment id resolves to nothing.
var ErrEquipmentNotFound = errors.New("equipment not found")

// ErrUsageEventNotFound is returned when a usage event id resolves to nothing.
var ErrUsageEventNotFound = errors.New("usage event not found")

// ErrTokenNotFound is returned when a refresh token hash is unknown,
// expired or revoked.
var ErrTokenNotFound = errors.New("refresh token not found")

// ErrDataIntegrity is returned when a read-side join cannot resolve a
// required reference. This indicates a bug, not a user error.
var ErrDataIntegrity = errors.New("data integrity fault")

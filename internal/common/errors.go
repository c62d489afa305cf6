// Package common defines shared sentinel errors used across the MindSync
// storage and service layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrStorageCorrupt = errors.New("storage corrupt")
	ErrRecordNotFound = errors.New("record not found")

	// Session-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)

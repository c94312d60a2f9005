package domain

import "errors"

var (
	// ErrNotFound is returned by store lookups when no entity matches.
	// Processors treat it as "dependency not sourced yet", never as failure.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert hits a uniqueness constraint,
	// meaning another worker materialized the same canonical entity first.
	ErrDuplicate = errors.New("duplicate entity")
)

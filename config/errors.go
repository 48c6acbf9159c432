package config

import "errors"

var (
	// ErrNotTable is returned when a top-level skin key is not a table.
	ErrNotTable = errors.New("config: top-level key is not a section")

	// ErrFormula is returned by Eval for malformed formulas.
	ErrFormula = errors.New("config: invalid formula")
)

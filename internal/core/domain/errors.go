package domain

import "errors"

var (
	// ErrInvalidDescriptor is returned when a descriptor field is malformed.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrMissingToolchain is returned when no toolchain channel is declared.
	ErrMissingToolchain = errors.New("missing toolchain channel")

	// ErrNoInputs is returned when a descriptor declares no pinned inputs.
	ErrNoInputs = errors.New("no inputs declared")

	// ErrInvalidInput is returned when an input lacks a name or URL.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateInput is returned when two inputs share a name.
	ErrDuplicateInput = errors.New("duplicate input")

	// ErrNoBaseInput is returned when every input is an overlay.
	ErrNoBaseInput = errors.New("no base input")
)

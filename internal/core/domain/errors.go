package domain

import "go.trai.ch/zerr"

var (
	// ErrUsage is returned when a command is invoked with bad or missing arguments.
	ErrUsage = zerr.New("invalid usage")

	// ErrInvalidDepth is returned when a history depth is not a non-negative integer.
	ErrInvalidDepth = zerr.New("depth must be a non-negative integer")

	// ErrMalformedBom is returned when persisted BOM content is not the expected structure.
	ErrMalformedBom = zerr.New("malformed bill of materials")

	// ErrBomReadFailed is returned when the BOM file cannot be read.
	ErrBomReadFailed = zerr.New("failed to read bill of materials")

	// ErrBomMarshalFailed is returned when the BOM cannot be serialized.
	ErrBomMarshalFailed = zerr.New("failed to marshal bill of materials")

	// ErrBomWriteFailed is returned when the BOM file cannot be written.
	ErrBomWriteFailed = zerr.New("failed to write bill of materials")

	// ErrFetchFailed is returned when the VCS backend cannot materialize a reference.
	ErrFetchFailed = zerr.New("failed to fetch reference")

	// ErrTargetCreateFailed is returned when a dependency directory cannot be created.
	ErrTargetCreateFailed = zerr.New("failed to create dependency directory")

	// ErrCycleDetected is returned when the dependency graph requires a
	// component version that is already being resolved further up the
	// traversal.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrPopulateFailed is returned when the populate traversal aborts.
	ErrPopulateFailed = zerr.New("populate failed")

	// ErrConfigReadFailed is returned when the tool configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

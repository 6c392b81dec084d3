// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for svg2ai: the run
// configuration, the native save options, and per-file conversion outcomes.
package types

// ConversionStatus is the outcome of visiting one file entry.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// FileOutcome records what happened to a single input file.
type FileOutcome struct {
	// Source is the input path.
	Source string `json:"source" yaml:"source"`

	// Target is the written native file, empty unless Status is converted.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Error describes a failure, empty otherwise.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package host defines the document host the converter drives: the
// application that opens SVG files, edits their placed symbol instances and
// saves them in the native format. Two hosts are provided: a pure-Go native
// host and a bridge to a running Adobe Illustrator.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/svg2ai/pkg/types"
)

var (
	// ErrNoDocument is returned when an operation needs an open document
	// and none is open.
	ErrNoDocument = errors.New("no document is open")

	// ErrDocumentOpen is returned by Open while another document is open.
	ErrDocumentOpen = errors.New("another document is already open")

	// ErrOverwriteDeclined is returned by SaveAs when the operator refuses to
	// replace an existing file.
	ErrOverwriteDeclined = errors.New("overwrite declined")

	// ErrClosed is returned by operations on a document that was closed.
	ErrClosed = errors.New("document is closed")
)

// InteractionLevel controls whether the host may show confirmation prompts.
type InteractionLevel int

const (
	DisplayAlerts InteractionLevel = iota
	DontDisplayAlerts
)

func (l InteractionLevel) String() string {
	if l == DontDisplayAlerts {
		return "DONTDISPLAYALERTS"
	}
	return "DISPLAYALERTS"
}

// CloseMode says what happens to unsaved changes on Close.
type CloseMode int

const (
	DontSaveChanges CloseMode = iota
	SaveChanges
)

// Host is the application the converter drives.
type Host interface {
	// Name returns the host name ("native" or "illustrator").
	Name() string

	// Available reports whether the host can be used on this machine.
	Available() bool

	// Open opens the file at path and makes it the active document.
	Open(ctx context.Context, path string) (Document, error)

	// ActiveDocument returns the open document, or ErrNoDocument.
	ActiveDocument() (Document, error)

	// InteractionLevel returns the current prompt policy.
	InteractionLevel() InteractionLevel

	// SetInteractionLevel changes the prompt policy.
	SetInteractionLevel(level InteractionLevel) error
}

// Document is one document opened by a Host.
type Document interface {
	// Name returns the file name the document was opened from.
	Name() string

	// SymbolInstances returns the number of placed symbol instances.
	SymbolInstances() (int, error)

	// RemoveSymbolInstances deletes all placed symbol instances. Symbol
	// definitions stay in the document's palette.
	RemoveSymbolInstances() error

	// Artboards returns the number of artboards.
	Artboards() (int, error)

	// SaveAs writes the document to path in the native format, replacing
	// any existing file.
	SaveAs(ctx context.Context, path string, opts types.SaveOptions) error

	// Close closes the document. After a successful Close the host has no
	// active document; after a failed one the document stays active.
	Close(mode CloseMode) error
}

// Options configures host construction.
type Options struct {
	// Application is the Illustrator application name used by the
	// illustrator host.
	Application string

	// Confirm is asked before the native host replaces an existing file
	// while the interaction level is DisplayAlerts. Nil means always replace.
	Confirm func(path string) bool
}

// New returns the host for backend. BackendAuto picks Illustrator when it is
// available and falls back to the native host.
func New(backend types.Backend, opts Options) (Host, error) {
	switch backend {
	case types.BackendNative:
		return NewNative(opts), nil
	case types.BackendIllustrator:
		ai := NewIllustrator(opts)
		if !ai.Available() {
			return nil, fmt.Errorf("illustrator host not available: %s not found or %q not installed",
				binOsascript, ai.app)
		}
		return ai, nil
	case types.BackendAuto, "":
		return Detect(opts), nil
	default:
		return nil, fmt.Errorf("unknown backend %q: use native, illustrator, or auto", backend)
	}
}

// Detect tries Illustrator first and falls back to the native host.
func Detect(opts Options) Host {
	return detect(defaultExec, opts)
}

func detect(exec executor, opts Options) Host {
	ai := newIllustrator(exec, opts)
	if ai.Available() {
		return ai
	}
	return NewNative(opts)
}

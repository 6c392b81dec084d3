// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package host

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/svg2ai/internal/symbols"
	"github.com/pdiddy/svg2ai/pkg/types"
)

const nameNative = "native"

// Native is a pure-Go host. It parses SVG files itself and saves the edited
// document, with its symbol definitions, under the native extension. The
// save options are recorded on the root element; Compressed gzips the file.
type Native struct {
	level   InteractionLevel
	confirm func(path string) bool
	active  *nativeDocument
}

// NewNative creates a native host at the DisplayAlerts level.
func NewNative(opts Options) *Native {
	return &Native{confirm: opts.Confirm}
}

func (n *Native) Name() string { return nameNative }

func (n *Native) Available() bool { return true }

func (n *Native) Open(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n.active != nil {
		return nil, fmt.Errorf("opening %s: %w", path, ErrDocumentOpen)
	}
	doc, err := symbols.ParseFile(path)
	if err != nil {
		return nil, err
	}
	n.active = &nativeDocument{host: n, name: filepath.Base(path), doc: doc}
	return n.active, nil
}

func (n *Native) ActiveDocument() (Document, error) {
	if n.active == nil {
		return nil, ErrNoDocument
	}
	return n.active, nil
}

func (n *Native) InteractionLevel() InteractionLevel { return n.level }

func (n *Native) SetInteractionLevel(level InteractionLevel) error {
	n.level = level
	return nil
}

type nativeDocument struct {
	host   *Native
	name   string
	doc    *symbols.Document
	closed bool
}

func (d *nativeDocument) Name() string { return d.name }

func (d *nativeDocument) SymbolInstances() (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	return len(d.doc.Instances()), nil
}

func (d *nativeDocument) RemoveSymbolInstances() error {
	if d.closed {
		return ErrClosed
	}
	d.doc.RemoveInstances()
	return nil
}

func (d *nativeDocument) Artboards() (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	return d.doc.Artboards(), nil
}

func (d *nativeDocument) SaveAs(ctx context.Context, path string, opts types.SaveOptions) error {
	if d.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	if _, err := os.Stat(path); err == nil && d.host.level == DisplayAlerts && d.host.confirm != nil {
		if !d.host.confirm(path) {
			return fmt.Errorf("saving %s: %w", path, ErrOverwriteDeclined)
		}
	}

	d.doc.SetMetadata(saveMetadata(opts))

	// Write to a sibling temp file so a failed save never leaves a partial
	// file at path.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := writeDocument(tmp, d.doc, opts.Compressed); err != nil {
		tmp.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Close drops the in-memory document. The native host has no backing file
// to write to, so SaveChanges behaves like DontSaveChanges.
func (d *nativeDocument) Close(mode CloseMode) error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	if d.host.active == d {
		d.host.active = nil
	}
	return nil
}

func writeDocument(w io.Writer, doc *symbols.Document, compressed bool) error {
	if !compressed {
		_, err := doc.WriteTo(w)
		return err
	}
	zw := gzip.NewWriter(w)
	if _, err := doc.WriteTo(zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func saveMetadata(opts types.SaveOptions) map[string]string {
	return map[string]string{
		"compatibility":         opts.Compatibility.String(),
		"compressed":            strconv.FormatBool(opts.Compressed),
		"embed-icc-profile":     strconv.FormatBool(opts.EmbedICCProfile),
		"embed-linked-files":    strconv.FormatBool(opts.EmbedLinkedFiles),
		"flatten":               string(opts.Flatten),
		"font-subset-threshold": strconv.Itoa(opts.FontSubsetThreshold),
		"pdf-compatible":        strconv.FormatBool(opts.PDFCompatible),
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/pdiddy/svg2ai/internal/host"
	"github.com/pdiddy/svg2ai/pkg/types"
)

// fakeHost implements host.Host for failure injection. Files are keyed by
// base name.
type fakeHost struct {
	openErr      map[string]error
	leaveOpen    map[string]bool // open fails but the document stays open
	saveErr      map[string]error
	closeErr     error
	closeFails   int // Close calls that fail with closeErr before one succeeds
	instances    int
	levelErr     error
	level        host.InteractionLevel
	levels       []host.InteractionLevel
	active       *fakeDocument
	opened       []string
	removed      []string
	saved        []string
	closed       []string
	maxOpen      int
	openNow      int
	savedOptions []types.SaveOptions
}

func (f *fakeHost) Name() string    { return "fake" }
func (f *fakeHost) Available() bool { return true }

func (f *fakeHost) Open(ctx context.Context, path string) (host.Document, error) {
	if f.active != nil {
		return nil, host.ErrDocumentOpen
	}
	name := filepath.Base(path)
	f.opened = append(f.opened, name)
	if err := f.openErr[name]; err != nil {
		if f.leaveOpen[name] {
			f.activate(name)
		}
		return nil, err
	}
	return f.activate(name), nil
}

func (f *fakeHost) activate(name string) *fakeDocument {
	f.active = &fakeDocument{host: f, name: name}
	f.openNow++
	if f.openNow > f.maxOpen {
		f.maxOpen = f.openNow
	}
	return f.active
}

func (f *fakeHost) ActiveDocument() (host.Document, error) {
	if f.active == nil {
		return nil, host.ErrNoDocument
	}
	return f.active, nil
}

func (f *fakeHost) InteractionLevel() host.InteractionLevel { return f.level }

func (f *fakeHost) SetInteractionLevel(level host.InteractionLevel) error {
	if f.levelErr != nil {
		return f.levelErr
	}
	f.level = level
	f.levels = append(f.levels, level)
	return nil
}

type fakeDocument struct {
	host *fakeHost
	name string
}

func (d *fakeDocument) Name() string { return d.name }

func (d *fakeDocument) SymbolInstances() (int, error) { return d.host.instances, nil }

func (d *fakeDocument) RemoveSymbolInstances() error {
	d.host.removed = append(d.host.removed, d.name)
	return nil
}

func (d *fakeDocument) Artboards() (int, error) { return 1, nil }

func (d *fakeDocument) SaveAs(ctx context.Context, path string, opts types.SaveOptions) error {
	if err := d.host.saveErr[d.name]; err != nil {
		return err
	}
	d.host.savedOptions = append(d.host.savedOptions, opts)
	d.host.saved = append(d.host.saved, path)
	return os.WriteFile(path, []byte("native:"+d.name), 0o644)
}

func (d *fakeDocument) Close(mode host.CloseMode) error {
	if d.host.active != d {
		return host.ErrClosed
	}
	if mode != host.DontSaveChanges {
		return errors.New("fake host only closes without saving")
	}
	if d.host.closeFails > 0 {
		d.host.closeFails--
		return d.host.closeErr
	}
	d.host.active = nil
	d.host.openNow--
	d.host.closed = append(d.host.closed, d.name)
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert walks an input tree of SVG symbol files and saves each one
// as a native document under a mirrored output tree, driving a host.Host.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/svg2ai/internal/host"
	"github.com/pdiddy/svg2ai/pkg/types"
)

// Roots holds the two operator-chosen folders. Both are absolute.
type Roots struct {
	Input  string
	Output string
}

// Reporter surfaces conversion outcomes to the operator.
type Reporter interface {
	// FileFailed reports a file that could not be converted.
	FileFailed(path string, err error)

	// Summary reports the number of files converted by a completed run.
	Summary(converted int, ext string)

	// Fatal reports an error that aborted the run.
	Fatal(err error)
}

// Options configures a conversion run.
type Options struct {
	// Extension is the native file extension (default "ai").
	Extension string

	// Save is applied to every saved document.
	Save types.SaveOptions

	// Logger receives structured records. Nil discards them.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = types.DefaultExtension
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Result holds the outcome of a conversion run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
	Folders   int
	Files     []types.FileOutcome
}

// Total returns the number of file entries visited.
func (r Result) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// walker carries the run state through the recursion.
type walker struct {
	host   host.Host
	roots  Roots
	opts   Options
	rep    Reporter
	w      io.Writer
	result Result
}

// Walk visits roots.Input depth-first. Every folder is mirrored under
// roots.Output before any file in it is converted; every .svg file is handed
// to ConvertFile. A file that fails is reported through rep and the walk
// continues. Walk stops at the first *FatalError.
func Walk(ctx context.Context, h host.Host, roots Roots, opts Options, rep Reporter, w io.Writer) (Result, error) {
	wk := &walker{host: h, roots: roots, opts: opts.withDefaults(), rep: rep, w: w}
	err := wk.visit(ctx, roots.Input)
	return wk.result, err
}

func (wk *walker) visit(ctx context.Context, dir string) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}

	dest, err := wk.roots.Destination(dir)
	if err != nil {
		return fatal(CodeAccessDenied, "Access is denied", err)
	}
	if err := ensureDir(dest); err != nil {
		return err
	}
	wk.result.Folders++
	wk.opts.Logger.Debug("folder.mirrored", "source", dir, "dest", dest)

	entries, err := os.ReadDir(dir)
	if err != nil {
		wk.fail(dir, err)
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fatal(CodeCancelled, "Conversion cancelled", err)
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if path == wk.roots.Output {
				continue
			}
			if err := wk.visit(ctx, path); err != nil {
				return err
			}
			continue
		}

		if !IsSVG(entry.Name()) {
			wk.result.Skipped++
			wk.result.Files = append(wk.result.Files, types.FileOutcome{
				Source: path, Status: types.ConversionSkipped,
			})
			continue
		}

		target, err := ConvertFile(ctx, wk.host, path, dest, wk.opts)
		if err != nil {
			if IsFatal(err) {
				return err
			}
			if ctx.Err() != nil {
				return fatal(CodeCancelled, "Conversion cancelled", ctx.Err())
			}
			wk.fail(path, err)
			closeDangling(wk.host)
			continue
		}

		wk.result.Converted++
		wk.result.Files = append(wk.result.Files, types.FileOutcome{
			Source: path, Target: target, Status: types.ConversionDone,
		})
		fmt.Fprintf(wk.w, "converted: %s -> %s\n", wk.rel(path), wk.rel(target))
		wk.opts.Logger.Info("file.converted", "source", path, "target", target)
	}
	return nil
}

func (wk *walker) fail(path string, err error) {
	wk.result.Failed++
	wk.result.Files = append(wk.result.Files, types.FileOutcome{
		Source: path, Status: types.ConversionFailed, Error: err.Error(),
	})
	fmt.Fprintf(wk.w, "failed:    %s (%v)\n", wk.rel(path), err)
	wk.opts.Logger.Warn("file.failed", "source", path, "error", err.Error())
	if wk.rep != nil {
		wk.rep.FileFailed(path, err)
	}
}

// rel shortens path for progress lines. Paths under either root are shown
// relative to it.
func (wk *walker) rel(path string) string {
	for _, root := range []string{wk.roots.Input, wk.roots.Output} {
		if r, err := RelativeFragment(root, path); err == nil {
			return r
		}
	}
	return path
}

// ensureDir creates dir when it is missing. It fails only when dir still
// does not exist afterwards.
func ensureDir(dir string) error {
	mkErr := os.MkdirAll(dir, 0o755)
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}
	if mkErr != nil {
		err = mkErr
	} else if err == nil {
		err = fmt.Errorf("%s is not a directory", dir)
	}
	return fatal(CodeAccessDenied, "Access is denied", err)
}

// ConvertFile opens src in h, removes its placed symbol instances, saves it as
// <base>.<ext> in destDir and closes it without saving further changes. It
// returns the written path.
func ConvertFile(ctx context.Context, h host.Host, src, destDir string, opts Options) (string, error) {
	opts = opts.withDefaults()

	doc, err := h.Open(ctx, src)
	if err != nil {
		return "", err
	}

	n, err := doc.SymbolInstances()
	if err != nil {
		return "", fmt.Errorf("counting symbol instances in %s: %w", doc.Name(), err)
	}
	if n > 0 {
		if err := doc.RemoveSymbolInstances(); err != nil {
			return "", fmt.Errorf("removing symbol instances from %s: %w", doc.Name(), err)
		}
		opts.Logger.Debug("instances.removed", "source", src, "count", n)
	}

	if boards, err := doc.Artboards(); err == nil && boards > 1 {
		opts.Logger.Debug("artboards.combined", "source", src, "artboards", boards)
	}

	target := filepath.Join(destDir, OutputName(filepath.Base(src), opts.Extension))
	if err := SaveAsNative(ctx, h, target, opts.Save); err != nil {
		return "", err
	}

	// The file is written at this point; a close failure does not undo it.
	if err := doc.Close(host.DontSaveChanges); err != nil {
		opts.Logger.Warn("document.close_failed", "source", src, "error", err.Error())
		closeDangling(h)
	}
	return target, nil
}

// SaveAsNative saves the host's active document to path with opts. A missing
// path or a missing document is fatal.
func SaveAsNative(ctx context.Context, h host.Host, path string, opts types.SaveOptions) error {
	if path == "" {
		return fatal(CodeNoPath, "No output path given", nil)
	}
	doc, err := h.ActiveDocument()
	if err != nil {
		if errors.Is(err, host.ErrNoDocument) {
			return fatal(CodeNoDocument, "No document is open", err)
		}
		return err
	}

	opts.SaveMultipleArtboards = false
	return doc.SaveAs(ctx, path, opts)
}

// closeDangling closes whatever document a failed conversion left open.
// Errors are ignored.
func closeDangling(h host.Host) {
	doc, err := h.ActiveDocument()
	if err != nil {
		return
	}
	_ = doc.Close(host.DontSaveChanges)
}

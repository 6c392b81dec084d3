// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package host

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/svg2ai/pkg/types"
)

const (
	nameIllustrator    = "illustrator"
	binOsascript       = "osascript"
	defaultApplication = "Adobe Illustrator"

	scriptOK     = "OK"
	scriptErrTag = "ERR\t"
)

// ScriptError is an exception raised inside Illustrator's scripting engine.
type ScriptError struct {
	Number      int
	Line        int
	Description string
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("illustrator error %d: %s (line %d)", e.Number, e.Description, e.Line)
	}
	return fmt.Sprintf("illustrator error %d: %s", e.Number, e.Description)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var defaultExec executor = &osExecutor{}

// Illustrator drives a running Adobe Illustrator through osascript. Every
// operation is one ExtendScript snippet evaluated with "do javascript";
// Illustrator keeps the open document between calls.
type Illustrator struct {
	app    string
	exec   executor
	level  InteractionLevel
	active *illustratorDocument

	// pending is set while the last Open failed and may have left its
	// document behind in Illustrator.
	pending *pendingOpen
}

// pendingOpen remembers a failed Open: the file and how many documents
// Illustrator had open before it.
type pendingOpen struct {
	path   string
	before int
}

// NewIllustrator creates a host for the application named in opts
// (default "Adobe Illustrator").
func NewIllustrator(opts Options) *Illustrator {
	return newIllustrator(defaultExec, opts)
}

func newIllustrator(exec executor, opts Options) *Illustrator {
	app := opts.Application
	if app == "" {
		app = defaultApplication
	}
	return &Illustrator{app: app, exec: exec}
}

func (h *Illustrator) Name() string { return nameIllustrator }

// Available reports whether osascript is on PATH and resolves the
// application without launching it.
func (h *Illustrator) Available() bool {
	if _, err := h.exec.LookPath(binOsascript); err != nil {
		return false
	}
	probe := fmt.Sprintf("id of application %s", appleString(h.app))
	_, err := h.exec.Output(context.Background(), binOsascript, "-e", probe)
	return err == nil
}

func (h *Illustrator) Open(ctx context.Context, path string) (Document, error) {
	if h.active != nil {
		return nil, fmt.Errorf("opening %s: %w", path, ErrDocumentOpen)
	}
	h.pending = nil
	before, err := h.documentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := h.eval(ctx, fmt.Sprintf("app.open(new File(%s));", jsString(path))); err != nil {
		h.pending = &pendingOpen{path: path, before: before}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	h.active = &illustratorDocument{host: h, name: filepath.Base(path)}
	return h.active, nil
}

// ActiveDocument returns the document opened through this host. After a
// failed Open it also returns the document that Open left behind, recognised
// by Illustrator holding more documents than before the call. Documents the
// operator had open are never returned.
func (h *Illustrator) ActiveDocument() (Document, error) {
	if h.active != nil {
		return h.active, nil
	}
	if h.pending == nil {
		return nil, ErrNoDocument
	}
	p := h.pending
	n, err := h.documentCount(context.Background())
	if err != nil {
		return nil, err
	}
	h.pending = nil
	if n <= p.before {
		return nil, ErrNoDocument
	}
	h.active = &illustratorDocument{host: h, name: filepath.Base(p.path)}
	return h.active, nil
}

func (h *Illustrator) documentCount(ctx context.Context) (int, error) {
	return h.evalInt(ctx, "return String(app.documents.length);")
}

// InteractionLevel reads Illustrator's current level. When the value cannot
// be read the last level set through this host is returned.
func (h *Illustrator) InteractionLevel() InteractionLevel {
	res, err := h.eval(context.Background(), "return String(app.userInteractionLevel);")
	if err != nil {
		return h.level
	}
	switch {
	case strings.HasSuffix(res, "DONTDISPLAYALERTS"):
		h.level = DontDisplayAlerts
	case strings.HasSuffix(res, "DISPLAYALERTS"):
		h.level = DisplayAlerts
	}
	return h.level
}

func (h *Illustrator) SetInteractionLevel(level InteractionLevel) error {
	body := fmt.Sprintf("app.userInteractionLevel = UserInteractionLevel.%s;", level)
	if _, err := h.eval(context.Background(), body); err != nil {
		return fmt.Errorf("setting interaction level: %w", err)
	}
	h.level = level
	return nil
}

// eval runs body inside Illustrator. body may return a string; when it does
// not, "OK" is returned.
func (h *Illustrator) eval(ctx context.Context, body string) (string, error) {
	tell := fmt.Sprintf("tell application %s to do javascript %s", appleString(h.app), appleString(wrapScript(body)))
	out, err := h.exec.Output(ctx, binOsascript, "-e", tell)
	if err != nil {
		return "", fmt.Errorf("running %s: %w", binOsascript, err)
	}
	res := strings.TrimRight(string(out), "\r\n")
	if strings.HasPrefix(res, scriptErrTag) {
		return "", parseScriptError(res)
	}
	return res, nil
}

func (h *Illustrator) evalInt(ctx context.Context, body string) (int, error) {
	res, err := h.eval(ctx, body)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(res)
	if err != nil {
		return 0, fmt.Errorf("unexpected script result %q: %w", res, err)
	}
	return n, nil
}

type illustratorDocument struct {
	host   *Illustrator
	name   string
	closed bool
}

func (d *illustratorDocument) Name() string { return d.name }

func (d *illustratorDocument) SymbolInstances() (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	return d.host.evalInt(context.Background(), "return String(app.activeDocument.symbolItems.length);")
}

func (d *illustratorDocument) RemoveSymbolInstances() error {
	if d.closed {
		return ErrClosed
	}
	_, err := d.host.eval(context.Background(), "app.activeDocument.symbolItems.removeAll();")
	return err
}

func (d *illustratorDocument) Artboards() (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	return d.host.evalInt(context.Background(), "return String(app.activeDocument.artboards.length);")
}

func (d *illustratorDocument) SaveAs(ctx context.Context, path string, opts types.SaveOptions) error {
	if d.closed {
		return ErrClosed
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if _, err := d.host.eval(ctx, saveScript(path, opts)); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func (d *illustratorDocument) Close(mode CloseMode) error {
	if d.closed {
		return ErrClosed
	}
	opt := "DONOTSAVECHANGES"
	if mode == SaveChanges {
		opt = "SAVECHANGES"
	}
	if _, err := d.host.eval(context.Background(), fmt.Sprintf("app.activeDocument.close(SaveOptions.%s);", opt)); err != nil {
		// The document stays active until a close succeeds.
		return fmt.Errorf("closing %s: %w", d.name, err)
	}
	d.closed = true
	if d.host.active == d {
		d.host.active = nil
	}
	return nil
}

// saveScript builds the IllustratorSaveOptions for opts and saves the active
// document to path.
func saveScript(path string, opts types.SaveOptions) string {
	flatten := "PRESERVEAPPEARANCE"
	if opts.Flatten == types.FlattenPreservePaths {
		flatten = "PRESERVEPATHS"
	}
	var b strings.Builder
	b.WriteString("var o = new IllustratorSaveOptions();")
	fmt.Fprintf(&b, "o.compatibility = Compatibility.%s;", opts.Compatibility)
	fmt.Fprintf(&b, "o.compressed = %t;", opts.Compressed)
	fmt.Fprintf(&b, "o.embedICCProfile = %t;", opts.EmbedICCProfile)
	fmt.Fprintf(&b, "o.embedLinkedFiles = %t;", opts.EmbedLinkedFiles)
	fmt.Fprintf(&b, "o.flattenOutput = OutputFlattening.%s;", flatten)
	fmt.Fprintf(&b, "o.fontSubsetThreshold = %d;", opts.FontSubsetThreshold)
	fmt.Fprintf(&b, "o.pdfCompatible = %t;", opts.PDFCompatible)
	fmt.Fprintf(&b, "o.saveMultipleArtboards = %t;", opts.SaveMultipleArtboards)
	fmt.Fprintf(&b, "app.activeDocument.saveAs(new File(%s), o);", jsString(path))
	return b.String()
}

// wrapScript turns body into an expression whose value is the body's return
// value, "OK", or an ERR line describing the exception.
func wrapScript(body string) string {
	return "(function(){try{" + body + "return \"" + scriptOK + "\";}catch(e){" +
		"return \"ERR\\t\"+(e.number&0xFFFF)+\"\\t\"+(e.line||0)+\"\\t\"+e.description;}})();"
}

// parseScriptError decodes "ERR\t<number>\t<line>\t<description>".
func parseScriptError(res string) *ScriptError {
	parts := strings.SplitN(strings.TrimPrefix(res, scriptErrTag), "\t", 3)
	se := &ScriptError{Description: res}
	if len(parts) != 3 {
		return se
	}
	se.Number, _ = strconv.Atoi(parts[0])
	se.Line, _ = strconv.Atoi(parts[1])
	se.Description = parts[2]
	return se
}

// jsString returns s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// appleString returns s as an AppleScript string literal.
func appleString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

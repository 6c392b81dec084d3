// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package symbols reads SVG documents that carry named <symbol> definitions
// and edits the placed instances that reference them.
//
// A symbol definition is a <symbol id="..."> element. A symbol instance is a
// <use> element outside any <defs> or <symbol> whose href points at one of
// those definitions. Removing instances leaves the definitions untouched.
package symbols

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// ErrNotSVG is returned when the parsed root element is not <svg>.
var ErrNotSVG = errors.New("root element is not <svg>")

// Symbol is one named definition.
type Symbol struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	ViewBox string `json:"view_box,omitempty" yaml:"view_box,omitempty"`
}

// Instance is a placed reference to a Symbol.
type Instance struct {
	// Ref is the referenced symbol ID, without the leading '#'.
	Ref string
	el  *etree.Element
}

// Document is a parsed SVG file.
type Document struct {
	doc *etree.Document
}

// Parse reads an SVG document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}
	return newDocument(doc)
}

// ParseFile reads the SVG document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func newDocument(doc *etree.Document) (*Document, error) {
	root := doc.Root()
	if root == nil || !strings.EqualFold(root.Tag, "svg") {
		return nil, ErrNotSVG
	}
	return &Document{doc: doc}, nil
}

// Root returns the <svg> element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Symbols returns every <symbol> definition that has an id, in document order.
func (d *Document) Symbols() []Symbol {
	var out []Symbol
	for _, el := range d.Root().FindElements("//symbol") {
		id := el.SelectAttrValue("id", "")
		if id == "" {
			continue
		}
		s := Symbol{ID: id, ViewBox: el.SelectAttrValue("viewBox", "")}
		if t := el.SelectElement("title"); t != nil {
			s.Title = strings.TrimSpace(t.Text())
		}
		out = append(out, s)
	}
	return out
}

// SymbolIDs returns the sorted set of symbol IDs.
func (d *Document) SymbolIDs() []string {
	syms := d.Symbols()
	ids := make([]string, 0, len(syms))
	for _, s := range syms {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)
	return ids
}

// Instances returns the placed symbol instances, in document order.
func (d *Document) Instances() []Instance {
	defined := make(map[string]bool)
	for _, s := range d.Symbols() {
		defined[s.ID] = true
	}

	var out []Instance
	var visit func(el *etree.Element)
	visit = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			switch child.Tag {
			case "defs", "symbol":
				continue
			case "use":
				if ref := useRef(child); defined[ref] {
					out = append(out, Instance{Ref: ref, el: child})
				}
			}
			visit(child)
		}
	}
	visit(d.Root())
	return out
}

// RemoveInstances deletes every placed symbol instance and returns how many
// were removed. Calling it on a document without instances is a no-op.
func (d *Document) RemoveInstances() int {
	instances := d.Instances()
	for _, inst := range instances {
		if parent := inst.el.Parent(); parent != nil {
			parent.RemoveChild(inst.el)
		}
	}
	return len(instances)
}

// Artboards returns the number of artboards. SVG has a single canvas.
func (d *Document) Artboards() int {
	return 1
}

// SetMetadata records key=value pairs as data-svg2ai-* attributes on the root.
func (d *Document) SetMetadata(meta map[string]string) {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	root := d.Root()
	for _, k := range keys {
		root.CreateAttr("data-svg2ai-"+k, meta[k])
	}
}

// WriteTo serializes the document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// useRef returns the symbol ID a <use> points at, or "" for external or
// missing references.
func useRef(el *etree.Element) string {
	href := el.SelectAttrValue("href", "")
	if href == "" {
		href = el.SelectAttrValue("xlink:href", "")
	}
	if !strings.HasPrefix(href, "#") {
		return ""
	}
	return href[1:]
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dialog asks the operator for the input and output folders.
package dialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/svg2ai/internal/convert"
)

// ErrCancelled is returned when the operator dismisses a folder prompt.
// It is not a failure: the run ends without any alert.
var ErrCancelled = errors.New("folder selection cancelled")

const (
	InputPrompt  = "Select SVG Files Location."
	OutputPrompt = "Select Output AI Location."
)

// Picker selects one folder.
type Picker interface {
	// SelectFolder returns an absolute folder path or ErrCancelled. When
	// mustExist is set the folder must already exist.
	SelectFolder(prompt string, mustExist bool) (string, error)
}

// SelectRoots asks for the input folder, then the output folder.
func SelectRoots(p Picker) (convert.Roots, error) {
	in, err := p.SelectFolder(InputPrompt, true)
	if err != nil {
		return convert.Roots{}, err
	}
	out, err := p.SelectFolder(OutputPrompt, false)
	if err != nil {
		return convert.Roots{}, err
	}
	return convert.Roots{Input: in, Output: out}, nil
}

// Prompter asks on a terminal. An empty line or end of input cancels.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) SelectFolder(prompt string, mustExist bool) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", prompt)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading folder: %w", err)
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			fmt.Fprintln(p.out)
			return "", ErrCancelled
		}

		path, perr := Resolve(answer)
		if perr != nil {
			return "", perr
		}
		if !mustExist || isDir(path) {
			return path, nil
		}
		fmt.Fprintf(p.out, "%s is not a folder\n", path)
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
	}
}

// Confirm asks a yes/no question. Anything but y or yes, including end of
// input, is a no.
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Fixed returns preset folders and asks through Fallback for any left empty.
// With a nil Fallback an empty folder cancels.
type Fixed struct {
	Input    string
	Output   string
	Fallback Picker
}

func (f Fixed) SelectFolder(prompt string, mustExist bool) (string, error) {
	value := f.Output
	if prompt == InputPrompt {
		value = f.Input
	}
	if value == "" {
		if f.Fallback == nil {
			return "", ErrCancelled
		}
		return f.Fallback.SelectFolder(prompt, mustExist)
	}

	path, err := Resolve(value)
	if err != nil {
		return "", err
	}
	if mustExist && !isDir(path) {
		return "", fmt.Errorf("%s is not a folder", path)
	}
	return path, nil
}

// Resolve expands a leading "~" and makes path absolute and clean.
func Resolve(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

const svgExtension = "svg"

// Extension returns the part of name after the last '.', and false when name
// has no '.'.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}

// IsSVG reports whether name has an svg extension, in any case.
func IsSVG(name string) bool {
	ext, ok := Extension(name)
	return ok && strings.EqualFold(ext, svgExtension)
}

// BaseName returns name up to its final '.'.
func BaseName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// OutputName returns the native file name for the input file name.
func OutputName(name, ext string) string {
	return BaseName(name) + "." + strings.TrimPrefix(ext, ".")
}

// RelativeFragment returns dir relative to root. It is "." for root itself
// and an error when dir is not inside root.
func RelativeFragment(root, dir string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(dir))
	if err != nil {
		return "", fmt.Errorf("relating %s to %s: %w", dir, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", dir, root)
	}
	return rel, nil
}

// Destination returns the output folder mirroring dir.
func (r Roots) Destination(dir string) (string, error) {
	rel, err := RelativeFragment(r.Input, dir)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return r.Output, nil
	}
	return filepath.Join(r.Output, rel), nil
}

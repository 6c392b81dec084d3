// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name    string
		wantExt string
		wantOK  bool
		wantSVG bool
	}{
		{"icons.svg", "svg", true, true},
		{"ICONS.SVG", "SVG", true, true},
		{"Icons.Svg", "Svg", true, true},
		{"icons.min.svg", "svg", true, true},
		{"icons.svg.bak", "bak", true, false},
		{"readme", "", false, false},
		{"notes.txt", "txt", true, false},
		{".svg", "svg", true, true},
		{"trailing.", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := Extension(tt.name)
			assert.Equal(t, tt.wantExt, ext)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSVG, IsSVG(tt.name))
		})
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want string
	}{
		{"icons.svg", "ai", "icons.ai"},
		{"icons.min.svg", "ai", "icons.min.ai"},
		{"ICONS.SVG", ".ai", "ICONS.ai"},
		{"readme", "ai", "readme.ai"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputName(tt.name, tt.ext), tt.name)
	}
}

func TestRelativeFragment(t *testing.T) {
	root := filepath.FromSlash("/data/My Icons")

	rel, err := RelativeFragment(root, root)
	require.NoError(t, err)
	assert.Equal(t, ".", rel)

	rel, err = RelativeFragment(root, filepath.Join(root, "sub", "deep"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sub", "deep"), rel)

	// The root's own name repeated further down must not confuse the split.
	rel, err = RelativeFragment(root, filepath.Join(root, "My Icons", "x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("My Icons", "x"), rel)

	_, err = RelativeFragment(root, filepath.FromSlash("/data/Other"))
	assert.Error(t, err)

	_, err = RelativeFragment(root, filepath.FromSlash("/data/My Icons2"))
	assert.Error(t, err)
}

func TestRootsDestination(t *testing.T) {
	roots := Roots{Input: filepath.FromSlash("/in"), Output: filepath.FromSlash("/out")}

	dest, err := roots.Destination(roots.Input)
	require.NoError(t, err)
	assert.Equal(t, roots.Output, dest)

	dest, err = roots.Destination(filepath.FromSlash("/in/a/b"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/a/b"), dest)
}

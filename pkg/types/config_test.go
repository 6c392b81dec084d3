// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSaveOptions(t *testing.T) {
	opts := DefaultSaveOptions()
	assert.Equal(t, Illustrator12, opts.Compatibility)
	assert.True(t, opts.Compressed)
	assert.False(t, opts.EmbedICCProfile)
	assert.False(t, opts.EmbedLinkedFiles)
	assert.Equal(t, FlattenPreserveAppearance, opts.Flatten)
	assert.Equal(t, 100, opts.FontSubsetThreshold)
	assert.True(t, opts.PDFCompatible)
	assert.False(t, opts.SaveMultipleArtboards)
	assert.NoError(t, opts.Validate())
}

func TestSaveOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SaveOptions)
		wantErr string
	}{
		{name: "newer compatibility", modify: func(o *SaveOptions) { o.Compatibility = Illustrator15 }},
		{name: "too old for long symbol names", modify: func(o *SaveOptions) { o.Compatibility = Illustrator10 }, wantErr: "below 12"},
		{name: "unknown flattening", modify: func(o *SaveOptions) { o.Flatten = "rasterize" }, wantErr: "flattening"},
		{name: "threshold over 100", modify: func(o *SaveOptions) { o.FontSubsetThreshold = 101 }, wantErr: "out of range"},
		{name: "preserve paths", modify: func(o *SaveOptions) { o.Flatten = FlattenPreservePaths }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultSaveOptions()
			tt.modify(&opts)
			err := opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCompatibilityString(t *testing.T) {
	assert.Equal(t, "ILLUSTRATOR12", Illustrator12.String())
	assert.Equal(t, "ILLUSTRATOR24", Illustrator24.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendAuto, cfg.Backend)
	assert.Equal(t, "ai", cfg.Extension)
	assert.Equal(t, DefaultSaveOptions(), cfg.Save)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/svg2ai/internal/convert"
	"github.com/pdiddy/svg2ai/internal/host"
	"github.com/pdiddy/svg2ai/internal/report"
	"github.com/pdiddy/svg2ai/pkg/types"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, types.BackendAuto, cfg.Backend)
	assert.Equal(t, "ai", cfg.Extension)
	assert.Equal(t, types.DefaultSaveOptions(), cfg.Save)
	assert.NotEmpty(t, cfg.LogDir)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svg2ai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: /icons/in
output: /icons/out
backend: native
strict: true
save:
  compatibility: 15
  compressed: false
`), 0o644))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "/icons/in", cfg.Input)
	assert.Equal(t, "/icons/out", cfg.Output)
	assert.Equal(t, types.BackendNative, cfg.Backend)
	assert.True(t, cfg.Strict)
	assert.Equal(t, types.Illustrator15, cfg.Save.Compatibility)
	assert.False(t, cfg.Save.Compressed)
	assert.Equal(t, 100, cfg.Save.FontSubsetThreshold, "unset keys keep defaults")
}

func TestLoadConfigRejectsOldCompatibility(t *testing.T) {
	v := newViper(t)
	v.Set("save.compatibility", 10)

	_, err := loadConfig(v)
	assert.ErrorContains(t, err, "invalid save options")
}

func TestConfigRoundTripsThroughYAML(t *testing.T) {
	cfg, err := loadConfig(newViper(t))
	require.NoError(t, err)

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "compatibility: 12")
	assert.Contains(t, string(data), "flatten: preserve_appearance")
}

func writeInputTree(t *testing.T) convert.Roots {
	t.Helper()
	tmp := t.TempDir()
	roots := convert.Roots{Input: filepath.Join(tmp, "in"), Output: filepath.Join(tmp, "out")}
	require.NoError(t, os.MkdirAll(filepath.Join(roots.Input, "sub"), 0o755))
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><defs><symbol id="s"/></defs><use href="#s"/></svg>`
	require.NoError(t, os.WriteFile(filepath.Join(roots.Input, "a.svg"), []byte(svg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(roots.Input, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(roots.Input, "sub", "c.svg"), []byte(svg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(roots.Input, "sub", "broken.svg"), []byte("<svg><g fill=red/></svg>"), 0o644))
	return roots
}

func TestConvertTree(t *testing.T) {
	roots := writeInputTree(t)
	alerts := &report.Recorder{}
	var out bytes.Buffer

	err := convertTree(context.Background(), host.NewNative(host.Options{}), roots, types.DefaultConfig(), alerts, &out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(roots.Output, "a.ai"))
	assert.FileExists(t, filepath.Join(roots.Output, "sub", "c.ai"))
	assert.NoFileExists(t, filepath.Join(roots.Output, "b.ai"))
	assert.NoFileExists(t, filepath.Join(roots.Output, "sub", "broken.ai"))

	msgs := alerts.Messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "broken.svg")
	assert.Equal(t, "2 SVG files were converted to AI", msgs[1])
}

func TestConvertTreeStrict(t *testing.T) {
	roots := writeInputTree(t)
	cfg := types.DefaultConfig()
	cfg.Strict = true

	err := convertTree(context.Background(), host.NewNative(host.Options{}), roots, cfg, &report.Recorder{}, &bytes.Buffer{})
	require.Error(t, err)
	var reported reportedError
	assert.False(t, errors.As(err, &reported), "strict failures are printed by main")
	assert.Equal(t, "1 file(s) failed conversion", err.Error())
}

func TestConvertTreeFatal(t *testing.T) {
	roots := writeInputTree(t)
	require.NoError(t, os.WriteFile(roots.Output, []byte("blocker"), 0o644))
	alerts := &report.Recorder{}

	err := convertTree(context.Background(), host.NewNative(host.Options{}), roots, types.DefaultConfig(), alerts, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, convert.IsFatal(err))
	msgs := alerts.Messages()
	require.Len(t, msgs, 1)
	assert.True(t, strings.HasPrefix(msgs[0], "ERROR: 5, Access is denied"), msgs[0])
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "svg2ai dev (commit=none, date=unknown)", versionString())
}

package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, fluidgrid.DefaultConfig(), cfg.Grid)
	require.Equal(t, CurrentVersion, cfg.Version)
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "gridkit.yaml", `
version: v1.2.0
grid:
  minItemWidth: 100
  maxItemWidth: 120
preview:
  items: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 100.0, cfg.Grid.MinItemWidth)
	require.Equal(t, 120.0, cfg.Grid.MaxItemWidth)
	require.Equal(t, float64(fluidgrid.DefaultGap), cfg.Grid.Gap)
	require.Equal(t, 30, cfg.Preview.Items)
	require.Equal(t, float64(DefaultPreviewWidth), cfg.Preview.Width)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "gridkit.toml", `
version = "v1"

[grid]
minItemWidth = 50
maxItemWidth = 100
gap = 10

[preview]
title = "Weekly specials"
cellWidth = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, fluidgrid.Config{MinItemWidth: 50, MaxItemWidth: 100, Gap: 10}, cfg.Grid)
	require.Equal(t, "Weekly specials", cfg.Preview.Title)
	require.Equal(t, 10.0, cfg.Preview.CellWidth)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "gridkit.json", `{}`)
	_, err := Load(path)

	var gerr *errors.GridError
	require.True(t, stderrors.As(err, &gerr))
	require.Equal(t, errors.KindConfig, gerr.Kind)
}

func TestLoadParseError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "gridkit.yaml", "grid: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestValidateReportsFieldPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"bad version", func(c *Config) { c.Version = "1.0" }, "version"},
		{"max below min", func(c *Config) { c.Grid.MaxItemWidth = 10 }, "grid.maxItemWidth"},
		{"negative gap", func(c *Config) { c.Grid.Gap = -1 }, "grid.gap"},
		{"zero min", func(c *Config) { c.Grid.MinItemWidth = 0 }, "grid.minItemWidth"},
		{"zero cell width", func(c *Config) { c.Preview.CellWidth = 0 }, "preview.cellWidth"},
		{"negative items", func(c *Config) { c.Preview.Items = -3 }, "preview.items"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.edit(cfg)
			err := cfg.Validate()

			var gerr *errors.GridError
			require.True(t, stderrors.As(err, &gerr), "got %v", err)
			require.Equal(t, tt.field, gerr.Field)
			require.Equal(t, errors.KindConfig, gerr.Kind)
		})
	}
}

func TestValidateEmptyVersionAllowed(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Version = ""
	require.NoError(t, cfg.Validate())
}

func TestLoadOptionalMissing(t *testing.T) {
	t.Parallel()

	cfg, path, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, Default(), cfg)
}

func TestLoadOptionalPrefersYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "gridkit.toml", "[preview]\nitems = 2\n")
	yamlPath := writeFile(t, dir, "gridkit.yaml", "preview:\n  items: 5\n")

	cfg, path, err := LoadOptional(dir)
	require.NoError(t, err)
	require.Equal(t, yamlPath, path)
	require.Equal(t, 5, cfg.Preview.Items)
}

func TestResolveTitleFromModule(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/shop/storefront/v2\n\ngo 1.24\n")
	sub := filepath.Join(root, "cmd", "web")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	res, err := Resolve(sub, "")
	require.NoError(t, err)
	require.Equal(t, "storefront", res.Preview.Title)
	require.Equal(t, "example.com/shop/storefront/v2", res.ModulePath)
	require.Equal(t, root, res.Root)
	require.Empty(t, res.Source)
}

func TestResolveKeepsExplicitTitle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/shop\n")
	writeFile(t, root, "gridkit.yaml", "preview:\n  title: Deals\n")

	res, err := Resolve(root, "")
	require.NoError(t, err)
	require.Equal(t, "Deals", res.Preview.Title)
	require.Equal(t, filepath.Join(root, "gridkit.yaml"), res.Source)
}

func TestResolveExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[grid]\ngap = 4\n")

	res, err := Resolve(dir, path)
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Grid.Gap)
	require.Equal(t, path, res.Source)
}

func TestDefaultTitle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "gridkit", defaultTitle("github.com/freshcart/gridkit", "/tmp/x"))
	require.Equal(t, "x", defaultTitle("", "/tmp/x"))
	require.Equal(t, "gridkit", defaultTitle("", "/"))
}

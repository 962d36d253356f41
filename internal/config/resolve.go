package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Resolved contains the loaded configuration and where it came from.
type Resolved struct {
	*Config
	// Root is the directory holding go.mod, or the start directory when
	// there is no enclosing module.
	Root       string
	ModulePath string
	// Source is the config file that was read. Empty means defaults.
	Source string
}

// Resolve loads the configuration for dir and fills in defaults that depend
// on the project. When path is set it is loaded instead of searching dir.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, path, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}

	root, modPath, err := findModule(dir)
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = dir
	}

	if strings.TrimSpace(cfg.Preview.Title) == "" {
		cfg.Preview.Title = defaultTitle(modPath, root)
	}

	return &Resolved{
		Config:     cfg,
		Root:       root,
		ModulePath: modPath,
		Source:     path,
	}, nil
}

// findModule walks up from dir to the nearest go.mod. It returns empty
// strings when none exists.
func findModule(dir string) (root, modPath string, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return "", "", fmt.Errorf("could not determine module path from %s", filepath.Join(dir, "go.mod"))
			}
			return dir, path, nil
		}
		if !stderrors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("failed to read go.mod: %w", err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

func defaultTitle(modPath, dir string) string {
	base := filepath.Base(dir)
	if modPath != "" {
		prefix, _, ok := module.SplitPathVersion(modPath)
		if ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "gridkit"
	}
	return base
}

// Package config resolves where pagegen reads its inputs and writes pages.
//
// Settings are layered: built-in defaults, then an optional pagegen.yaml in
// the project root, then PAGEGEN_* environment variables (a .env file in the
// root is loaded first). Relative paths resolve against the project root.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the optional settings file looked up in the project root.
const FileName = "pagegen.yaml"

// Config holds resolved generator settings.
type Config struct {
	Root       string `yaml:"-"`
	Graph      string `yaml:"graph"`
	References string `yaml:"references"`
	Output     string `yaml:"output"`
	Extension  string `yaml:"extension"`
	CacheSize  int    `yaml:"cache_size"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns the built-in settings for root.
func Default(root string) Config {
	return Config{
		Root:       root,
		Graph:      filepath.Join("scaffold", "page-graph.json"),
		References: filepath.Join("reference", "src"),
		Output:     "src",
		Extension:  ".jsx",
		CacheSize:  256,
	}
}

// Load builds the configuration for the project rooted at root.
func Load(root string) (Config, error) {
	cfg := Default(root)

	data, err := os.ReadFile(filepath.Join(root, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading %s: %w", FileName, err)
	}

	_ = godotenv.Load(filepath.Join(root, ".env"))

	if v := os.Getenv("PAGEGEN_GRAPH"); v != "" {
		cfg.Graph = v
	}
	if v := os.Getenv("PAGEGEN_REFERENCES"); v != "" {
		cfg.References = v
	}
	if v := os.Getenv("PAGEGEN_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("PAGEGEN_EXTENSION"); v != "" {
		cfg.Extension = v
	}
	if v := os.Getenv("PAGEGEN_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("PAGEGEN_VERBOSE: %w", err)
		}
		cfg.Verbose = b
	}

	cfg.Root = root
	if cfg.Extension != "" && !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	cfg.Graph = cfg.resolve(cfg.Graph)
	cfg.References = cfg.resolve(cfg.References)
	cfg.Output = cfg.resolve(cfg.Output)
	return cfg, nil
}

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// PagePath returns <base>/<domain>/pages/<component><ext>.
func (c Config) PagePath(base, domain, component string) string {
	return filepath.Join(base, domain, "pages", component+c.Extension)
}

// ReferencePath locates the reference page for a component.
func (c Config) ReferencePath(domain, component string) string {
	return c.PagePath(c.References, domain, component)
}

// OutputPath locates the generated page for a component.
func (c Config) OutputPath(domain, component string) string {
	return c.PagePath(c.Output, domain, component)
}

// FindProjectRoot walks up from the working directory to the nearest go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("could not find project root (no go.mod found)")
		}
		dir = parent
	}
}

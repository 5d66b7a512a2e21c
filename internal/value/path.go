package value

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PathConfig controls Path validation. A nil Fs selects the real file
// system; tests inject an afero.MemMapFs.
type PathConfig struct {
	MustExist bool
	Fs        afero.Fs
}

// Path is a normalized file system path. The leading ~ is expanded at
// construction and abbreviated again in the string form.
type Path struct {
	value string
	cfg   PathConfig
}

// NewPath normalizes raw (expands ~, collapses . and ..) and, if
// cfg.MustExist is set, fails when the path does not exist.
func NewPath(raw string, cfg PathConfig) (Path, error) {
	expanded := expandHome(raw)
	expanded = filepath.Clean(expanded)

	if cfg.MustExist {
		fs := cfg.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		exists, err := afero.Exists(fs, expanded)
		if err != nil || !exists {
			return Path{}, validationErrorf(raw, "No such file or directory")
		}
	}
	return Path{value: expanded, cfg: cfg}, nil
}

// MustPath panics if raw is invalid. Used for built-in defaults.
func MustPath(raw string, cfg PathConfig) Path {
	p, err := NewPath(raw, cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Abs returns the normalized path without home abbreviation.
func (p Path) Abs() string { return p.value }

// String abbreviates the home directory back to ~.
func (p Path) String() string {
	home, err := os.UserHomeDir()
	if err == nil && home != "" && strings.HasPrefix(p.value, home) {
		return "~" + p.value[len(home):]
	}
	return p.value
}

// Syntax describes the accepted input.
func (p Path) Syntax() string { return "file system path" }

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			return home + path[1:]
		}
	}
	return path
}

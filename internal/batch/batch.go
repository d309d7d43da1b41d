// Package batch loads batch files for the pathbounds command and runs
// them through the bounds engine.
//
// A batch file lists SVG path data with optional per-path transforms:
//
//	workers: 4
//	transform: scale(2)
//	paths:
//	  - name: badge
//	    d: M0 0 h10 a5 5 0 0 1 0 10 h-10 z
//	    transform: translate(5 5)
//
// YAML (.yaml, .yml) and TOML (.toml) files share the same schema.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a batch file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrInvalid is returned when a batch file fails validation.
var ErrInvalid = errors.New("batch: invalid file")

// File is the decoded batch file.
type File struct {
	// Workers is the number of goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" toml:"workers"`
	// Transform is an SVG transform list applied after each path's own.
	Transform        string  `yaml:"transform" toml:"transform"`
	FirstSubpathOnly bool    `yaml:"first_subpath_only" toml:"first_subpath_only"`
	Paths            []Entry `yaml:"paths" toml:"paths"`
}

// Entry is one path of a batch.
type Entry struct {
	Name      string `yaml:"name" toml:"name"`
	D         string `yaml:"d" toml:"d"`
	Transform string `yaml:"transform" toml:"transform"`
}

// Defaults returns an empty batch with default settings.
func Defaults() File {
	return File{Workers: 0}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("batch: unsupported file extension %q", filepath.Ext(path))
}

// Load reads and validates the batch file at path.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("batch: %w", err)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a batch file from r. Unknown keys are rejected so that
// typos do not silently drop settings.
func Decode(r io.Reader, format Format) (File, error) {
	f := Defaults()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("batch: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("batch: decode toml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("batch: unknown format %q", format)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the settings and fills in missing entry names.
func (f *File) Validate() error {
	if f.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, f.Workers)
	}
	if len(f.Paths) == 0 {
		return fmt.Errorf("%w: no paths", ErrInvalid)
	}
	seen := make(map[string]bool, len(f.Paths))
	for i := range f.Paths {
		e := &f.Paths[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("path%d", i+1)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate path name %q", ErrInvalid, e.Name)
		}
		seen[e.Name] = true
		if strings.TrimSpace(e.D) == "" {
			return fmt.Errorf("%w: path %q has no data", ErrInvalid, e.Name)
		}
	}
	return nil
}

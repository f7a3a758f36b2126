package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// profileConfig is the file structure shared by TOML and JSON profiles.
type profileConfig struct {
	Name     string          `toml:"name" json:"name"`
	Bindings []bindingConfig `toml:"bindings" json:"bindings"`
}

type bindingConfig struct {
	Keys        string `toml:"keys" json:"keys"`
	Action      string `toml:"action" json:"action"`
	Description string `toml:"description,omitempty" json:"description,omitempty"`
}

// Loader loads profiles from TOML, JSON, and Lua files.
type Loader struct {
	searchPaths []string
}

// NewLoader creates a profile loader.
func NewLoader(searchPaths ...string) *Loader {
	return &Loader{searchPaths: searchPaths}
}

// AddSearchPath adds a directory to search for profile files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads one profile, selecting the format by file extension.
func (l *Loader) LoadFile(path string) (*Profile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return l.loadWith(path, toml.Unmarshal)
	case ".json":
		return l.loadWith(path, json.Unmarshal)
	case ".lua":
		return LoadLuaFile(path)
	default:
		return nil, fmt.Errorf("profile %s: unsupported format", path)
	}
}

func (l *Loader) loadWith(path string, unmarshal func([]byte, any) error) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := parseConfig(data, unmarshal)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// LoadTOML loads a profile from TOML text.
func LoadTOML(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return parseConfig(data, toml.Unmarshal)
}

// LoadJSON loads a profile from JSON text.
func LoadJSON(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return parseConfig(data, json.Unmarshal)
}

func parseConfig(data []byte, unmarshal func([]byte, any) error) (*Profile, error) {
	var cfg profileConfig
	if err := unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("profile has no name")
	}

	p := NewProfile(cfg.Name)
	for i, bc := range cfg.Bindings {
		if bc.Keys == "" {
			return nil, fmt.Errorf("binding %d: empty keys", i)
		}
		if bc.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, bc.Keys)
		}
		err := p.AddBinding(Binding{
			Keys:        bc.Keys,
			Action:      Action(bc.Action),
			Description: bc.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return p, nil
}

// LoadAll loads every profile file found in the search paths. Files that
// fail to load are skipped.
func (l *Loader) LoadAll() []*Profile {
	var profiles []*Profile
	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.toml", "*.json", "*.lua"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			for _, path := range matches {
				p, err := l.LoadFile(path)
				if err != nil {
					continue
				}
				profiles = append(profiles, p)
			}
		}
	}
	return profiles
}

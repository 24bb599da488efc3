// Package config loads and saves the user's generation settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/okra-platform/sourcegen/internal/filetype"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

// FileNames lists the settings files searched for, in order
var FileNames = []string{"sourcegen.json", "sourcegen.yaml", "sourcegen.yml", "sourcegen.toml"}

// Settings represents the sourcegen settings file
type Settings struct {
	Kind filetype.Kind `json:"kind" yaml:"kind" toml:"kind"`

	Comments      bool   `json:"comments" yaml:"comments" toml:"comments"`
	License       bool   `json:"license" yaml:"license" toml:"license"`
	LicenseText   string `json:"license_text" yaml:"license_text" toml:"license_text"`
	Author        bool   `json:"author" yaml:"author" toml:"author"`
	AuthorText    string `json:"author_text" yaml:"author_text" toml:"author_text"`
	Copyright     bool   `json:"copyright" yaml:"copyright" toml:"copyright"`
	CopyrightText string `json:"copyright_text" yaml:"copyright_text" toml:"copyright_text"`
	Date          bool   `json:"date" yaml:"date" toml:"date"`

	BaseClass     bool   `json:"base_class" yaml:"base_class" toml:"base_class"`
	BaseClassText string `json:"base_class_text" yaml:"base_class_text" toml:"base_class_text"`
	Namespace     bool   `json:"namespace" yaml:"namespace" toml:"namespace"`
	NamespaceText string `json:"namespace_text" yaml:"namespace_text" toml:"namespace_text"`
	Tabs          bool   `json:"tabs" yaml:"tabs" toml:"tabs"`
	Indent        int    `json:"indent" yaml:"indent" toml:"indent"`

	Output OutputSettings `json:"output" yaml:"output" toml:"output"`
}

// OutputSettings contains where and how generated files are written
type OutputSettings struct {
	PromptSave       bool   `json:"prompt_save" yaml:"prompt_save" toml:"prompt_save"`
	DefaultDirectory string `json:"default_directory" yaml:"default_directory" toml:"default_directory"`
	AutoOverwrite    bool   `json:"auto_overwrite" yaml:"auto_overwrite" toml:"auto_overwrite"`
	PromptOverwrite  bool   `json:"prompt_overwrite" yaml:"prompt_overwrite" toml:"prompt_overwrite"`
}

// Default returns the settings used when no file exists
func Default() *Settings {
	return &Settings{
		Kind:          filetype.CppClass,
		Comments:      true,
		License:       true,
		LicenseText:   BSDLicense,
		Author:        true,
		AuthorText:    "Me",
		Copyright:     true,
		CopyrightText: "Copyright (c) Me",
		Date:          true,
		BaseClass:     true,
		BaseClassText: "MyBaseClass",
		Namespace:     true,
		NamespaceText: "MyNamespace",
		Tabs:          true,
		Indent:        2,
		Output: OutputSettings{
			PromptSave:      true,
			PromptOverwrite: true,
		},
	}
}

// Generation snapshots the settings into a config for one output
func (s *Settings) Generation(kind filetype.Kind, baseName, date string) genconfig.Config {
	return genconfig.Config{
		Kind:             kind,
		BaseName:         baseName,
		IncludeDocBlock:  s.Comments,
		IncludeDate:      s.Date,
		IncludeAuthor:    s.Author,
		IncludeCopyright: s.Copyright,
		IncludeLicense:   s.License,
		AuthorText:       s.AuthorText,
		CopyrightText:    s.CopyrightText,
		LicenseText:      s.LicenseText,
		IncludeNamespace: s.Namespace,
		NamespaceText:    s.NamespaceText,
		IncludeBaseClass: s.BaseClass,
		BaseClassText:    s.BaseClassText,
		UseTabs:          s.Tabs,
		IndentWidth:      s.Indent,
		CurrentDate:      date,
	}
}

// LoadConfig loads the settings from the current directory or a parent directory
func LoadConfig() (*Settings, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadFromPath loads settings from a specific path. Fields absent from the
// file keep their defaults.
func LoadFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := Default()
	if err := decode(path, data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// LoadOrCreate loads settings from path, writing the defaults there first
// when the file does not exist yet
func LoadOrCreate(path string) (*Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, Default()); err != nil {
			return nil, err
		}
	}
	return LoadFromPath(path)
}

// Save writes settings to path, creating the parent directory when needed
func Save(path string, settings *Settings) error {
	data, err := encode(path, settings)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

func decode(path string, data []byte, settings *Settings) error {
	var err error
	switch format(path) {
	case "json":
		err = json.Unmarshal(data, settings)
	case "yaml":
		err = yaml.Unmarshal(data, settings)
	case "toml":
		err = toml.Unmarshal(data, settings)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to parse settings file: %w", err)
	}
	return nil
}

func encode(path string, settings *Settings) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "json":
		data, err = json.MarshalIndent(settings, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(settings)
	case "toml":
		data, err = toml.Marshal(settings)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// loadConfigFromDir searches for a settings file in the given directory and its parents
func loadConfigFromDir(startDir string) (*Settings, string, error) {
	dir := startDir
	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				settings, err := LoadFromPath(configPath)
				if err != nil {
					return nil, "", err
				}
				return settings, configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
}

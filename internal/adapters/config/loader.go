// Package config provides the loader for the optional dpnd.yaml tool configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/scribibble/dpnd/internal/core/domain"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd looking for a dpnd.yaml and returns the parsed
// settings. With the flat layout the file usually sits at the layout root,
// shared by every component underneath. No file means defaults.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	path, found := findConfig(cwd)
	if !found {
		return domain.DefaultSettings(), nil
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	settings := domain.DefaultSettings()
	if file.Git.Binary != "" {
		settings.GitBinary = file.Git.Binary
	}
	settings.Quiet = file.Git.Quiet
	settings.JSONLogs = file.Log.JSON
	return settings, nil
}

func findConfig(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is the fixed config filename discovered by walking up
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

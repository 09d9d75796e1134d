// Package store loads named preset shortcut tables from disk.
package store

import (
	"os"
	"path/filepath"

	"dl/bank2ledger/internal/logging"

	"gopkg.in/yaml.v3"
)

// Table maps shortcut names to full ledger account paths.
type Table map[string]string

// presetFile is the on-disk shape of a preset table, e.g.
//
//	accounts:
//	  checking: "Assets:Bank:DBS:Checking"
type presetFile struct {
	Accounts map[string]string `yaml:"accounts"`
}

// PresetStore locates and loads preset tables by name. A preset named "dbs"
// lives at <dir>/dbs.yaml.
type PresetStore struct {
	Dir    string
	logger logging.Logger
}

// NewPresetStore creates a store rooted at dir.
func NewPresetStore(dir string, logger logging.Logger) *PresetStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PresetStore{Dir: dir, logger: logger}
}

// Load returns the preset table for name and whether it was found. A missing
// or unreadable preset file degrades to an empty table with found=false;
// callers decide whether that deserves a warning. Resolution then falls
// through to user shortcuts and literal paths.
func (s *PresetStore) Load(name string) (Table, bool) {
	path := filepath.Join(s.Dir, name+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldPreset, name).
			Debug("Preset file not readable")
		return Table{}, false
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		s.logger.WithError(err).WithField(logging.FieldPreset, name).
			Warn("Preset file is not valid YAML, treating as empty")
		return Table{}, false
	}
	if file.Accounts == nil {
		return Table{}, true
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldPreset, Value: name},
		logging.Field{Key: logging.FieldCount, Value: len(file.Accounts)},
	).Debug("Loaded preset table")
	return file.Accounts, true
}

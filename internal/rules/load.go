package rules

import (
	"fmt"
	"os"

	"dl/bank2ledger/internal/ledgererror"
	"dl/bank2ledger/internal/logging"
	"dl/bank2ledger/internal/models"
	"dl/bank2ledger/internal/store"

	"gopkg.in/yaml.v3"
)

// rawDocument is a rule document as parsed from YAML, before normalization.
// Rules are kept as loose maps because the two surface syntaxes use
// different per-rule keys and authors may add fields we do not know about.
type rawDocument struct {
	PresetName    string               `yaml:"presetName"`
	UserShortcuts map[string]string    `yaml:"userShortcuts"`
	Input         models.InputOptions  `yaml:"input"`
	Output        models.OutputOptions `yaml:"output"`
	Rules         struct {
		Income  []map[string]interface{} `yaml:"income"`
		Expense []map[string]interface{} `yaml:"expense"`
	} `yaml:"rules"`

	extraKeys []string
}

var knownTopLevelKeys = map[string]bool{
	"presetName":    true,
	"userShortcuts": true,
	"input":         true,
	"output":        true,
	"rules":         true,
}

var knownRulesKeys = map[string]bool{
	"income":  true,
	"expense": true,
}

// parseDocument decodes raw YAML into a rawDocument, recording unrecognized
// top-level keys so the validator can report them.
func parseDocument(data []byte) (*rawDocument, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing rule document: %w", err)
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("error parsing rule document: %w", err)
	}
	for key := range generic {
		if !knownTopLevelKeys[key] {
			raw.extraKeys = append(raw.extraKeys, key)
		}
	}
	if rulesSection, ok := generic["rules"].(map[string]interface{}); ok {
		for key := range rulesSection {
			if !knownRulesKeys[key] {
				raw.extraKeys = append(raw.extraKeys, "rules."+key)
			}
		}
	}

	return &raw, nil
}

// Load reads a rule document from disk and returns the canonical, validated
// RuleDocument. Shortcut tables are combined here: user shortcuts declared
// in the document override the preset table named by presetName, which the
// store loads (degrading to an empty table when absent).
func Load(path string, presets *store.PresetStore, logger logging.Logger) (*models.RuleDocument, error) {
	logger.WithField(logging.FieldRulesFile, path).Info("Loading rule document")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rule document: %w", err)
	}

	raw, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	presetTable := store.Table{}
	if raw.PresetName != "" {
		var found bool
		presetTable, found = presets.Load(raw.PresetName)
		if !found {
			logger.WithField(logging.FieldPreset, raw.PresetName).
				Warn("Preset table not found, continuing with user shortcuts only")
		}
	}

	doc, err := Normalize(raw, presetTable)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc); err != nil {
		if schemaErr, ok := err.(*ledgererror.SchemaValidationError); ok {
			schemaErr.FilePath = path
		}
		return nil, err
	}

	logger.WithFields(
		logging.Field{Key: "income_rules", Value: len(doc.Income)},
		logging.Field{Key: "expense_rules", Value: len(doc.Expense)},
	).Info("Rule document loaded")
	return doc, nil
}

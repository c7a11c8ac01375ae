package rules

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// A rule document is a mapping from language key to language definition.
// Documents may be written in YAML, JSON (with optional comments and
// trailing commas), or TOML; the format is chosen by file extension.

// LoadDir loads and merges every recognized rule document in a directory.
// A language key appearing in more than one document is a hard error.
func LoadDir(fsys fs.FS, dir string) (*RuleSet, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]*Language)
	for _, entry := range entries {
		if entry.IsDir() || !recognizedFormat(entry.Name()) {
			continue
		}
		doc, err := loadDocument(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		for key, lang := range doc {
			if _, ok := byKey[key]; ok {
				return nil, fmt.Errorf("duplicate language found: %s", key)
			}
			byKey[key] = lang
		}
	}
	if len(byKey) == 0 {
		return nil, fmt.Errorf("no rule documents found in %s", dir)
	}
	return NewRuleSet(byKey), nil
}

// LoadFile loads a single rule document.
func LoadFile(fsys fs.FS, name string) (*RuleSet, error) {
	doc, err := loadDocument(fsys, name)
	if err != nil {
		return nil, err
	}
	return NewRuleSet(doc), nil
}

func recognizedFormat(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json", ".jsonc", ".toml":
		return true
	}
	return false
}

func loadDocument(fsys fs.FS, name string) (map[string]*Language, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %s: %w", name, err)
	}
	format := strings.ToLower(filepath.Ext(name))

	// Decode generically first so the document can be checked against the
	// schema before it is mapped onto the typed model.
	var generic map[string]any
	if err := decode(raw, format, &generic); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", name, err)
	}
	if err := validateDocument(generic); err != nil {
		return nil, fmt.Errorf("invalid rule file %s: %w", name, err)
	}

	var doc map[string]*Language
	if err := decode(raw, format, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", name, err)
	}
	return doc, nil
}

func decode(raw []byte, format string, v any) error {
	switch format {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, v)
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(raw), v)
	case ".toml":
		return toml.Unmarshal(raw, v)
	}
	return fmt.Errorf("unrecognized rule file format %q", format)
}

// Package rules defines the comment syntax rule model: a set of languages,
// each declaring its file extensions and the literal tokens that start (and,
// for block comments, end) a comment.
package rules

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// SingleLineRule describes a comment form that begins with a literal token
// and extends to the end of the line.
type SingleLineRule struct {
	Pattern     string `yaml:"pattern" json:"pattern" toml:"pattern"`
	Description string `yaml:"description" json:"description" toml:"description"`
}

// MultiLineRule describes a comment form delimited by literal start and end
// tokens, possibly spanning several lines.
type MultiLineRule struct {
	Start       string `yaml:"start" json:"start" toml:"start"`
	End         string `yaml:"end" json:"end" toml:"end"`
	Description string `yaml:"description" json:"description" toml:"description"`
}

// Language holds the comment syntax rules for one language. Extensions are
// declared without a leading dot and match case-sensitively.
type Language struct {
	Key        string           `yaml:"-" json:"-" toml:"-"`
	Name       string           `yaml:"name" json:"name" toml:"name"`
	Extensions []string         `yaml:"extensions" json:"extensions" toml:"extensions"`
	SingleLine []SingleLineRule `yaml:"single_line" json:"single_line" toml:"single_line"`
	MultiLine  []MultiLineRule  `yaml:"multi_line" json:"multi_line" toml:"multi_line"`
}

// RuleSet is an immutable collection of languages. Languages are ordered by
// ascending key, so detection is deterministic when several languages
// declare the same extension.
type RuleSet struct {
	languages []*Language
}

// NewRuleSet builds a RuleSet from a mapping of language key to definition.
func NewRuleSet(byKey map[string]*Language) *RuleSet {
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	languages := make([]*Language, len(keys))
	for i, key := range keys {
		lang := byKey[key]
		lang.Key = key
		languages[i] = lang
	}
	return &RuleSet{languages: languages}
}

// Languages returns the languages in their deterministic order.
func (rs *RuleSet) Languages() []*Language {
	return rs.languages
}

// UnsupportedFileTypeError is returned when a file has no extension, or its
// extension is not declared by any configured language.
type UnsupportedFileTypeError struct {
	Extension string
}

func (e *UnsupportedFileTypeError) Error() string {
	if e.Extension == "" {
		return "unsupported file type: no file extension found"
	}
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

// DetectLanguage returns the first language whose extension list contains
// the file's extension: the text after the last dot of the final path
// segment. It has no side effects.
func (rs *RuleSet) DetectLanguage(path string) (*Language, error) {
	ext := fileExtension(path)
	if ext == "" {
		return nil, &UnsupportedFileTypeError{}
	}
	for _, lang := range rs.languages {
		if slices.Contains(lang.Extensions, ext) {
			return lang, nil
		}
	}
	return nil, &UnsupportedFileTypeError{Extension: ext}
}

// fileExtension returns the extension without its dot, or "" when the final
// path segment has none. A leading dot alone (".bashrc") does not count as
// an extension separator.
func fileExtension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return base[i+1:]
}

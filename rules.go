// Package decomment embeds the default comment syntax rules.
package decomment

import (
	"embed"

	"github.com/codetidy/decomment/pkg/rules"
)

//go:embed rules
var ruleData embed.FS

// LoadDefaultRules loads the embedded default rule documents.
func LoadDefaultRules() (*rules.RuleSet, error) {
	return rules.LoadDir(ruleData, "rules")
}

package decomment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/decomment"
)

func TestLoadDefaultRules(t *testing.T) {
	rs, err := decomment.LoadDefaultRules()
	require.NoError(t, err)

	var keys []string
	for _, lang := range rs.Languages() {
		keys = append(keys, lang.Key)
	}
	assert.Equal(t, []string{
		"c", "cpp", "css", "go", "html", "java",
		"javascript", "python", "rust", "shell", "typescript",
	}, keys)
}

func TestDefaultRulesDetection(t *testing.T) {
	rs, err := decomment.LoadDefaultRules()
	require.NoError(t, err)

	cases := map[string]string{
		"main.go":       "Go",
		"lib.rs":        "Rust",
		"script.py":     "Python",
		"app.jsx":       "JavaScript",
		"component.tsx": "TypeScript",
		"Main.java":     "Java",
		"header.h":      "C",
		"impl.hpp":      "C++",
		"deploy.sh":     "Shell",
		"index.html":    "HTML",
		"style.css":     "CSS",
	}
	for path, want := range cases {
		lang, err := rs.DetectLanguage(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, lang.Name, path)
	}
}

package rules_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/decomment/pkg/rules"
)

const yamlDoc = `
lua:
  name: Lua
  extensions: [lua]
  single_line:
    - pattern: "--"
      description: Line comment
  multi_line:
    - start: "--[["
      end: "]]"
      description: Block comment
`

const jsoncDoc = `{
  // Comments in the rule file itself are allowed.
  "lua": {
    "name": "Lua",
    "extensions": ["lua"],
    "single_line": [
      {"pattern": "--", "description": "Line comment"}
    ],
    "multi_line": [
      {"start": "--[[", "end": "]]", "description": "Block comment"}
    ]
  }
}`

const tomlDoc = `
[lua]
name = "Lua"
extensions = ["lua"]

[[lua.single_line]]
pattern = "--"
description = "Line comment"

[[lua.multi_line]]
start = "--[["
end = "]]"
description = "Block comment"
`

func TestLoadFileEquivalentFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.yaml": &fstest.MapFile{Data: []byte(yamlDoc)},
		"rules.json": &fstest.MapFile{Data: []byte(jsoncDoc)},
		"rules.toml": &fstest.MapFile{Data: []byte(tomlDoc)},
	}

	want := rules.NewRuleSet(map[string]*rules.Language{
		"lua": {
			Name:       "Lua",
			Extensions: []string{"lua"},
			SingleLine: []rules.SingleLineRule{{Pattern: "--", Description: "Line comment"}},
			MultiLine:  []rules.MultiLineRule{{Start: "--[[", End: "]]", Description: "Block comment"}},
		},
	})

	for _, name := range []string{"rules.yaml", "rules.json", "rules.toml"} {
		t.Run(name, func(t *testing.T) {
			rs, err := rules.LoadFile(fsys, name)
			require.NoError(t, err)
			assert.Equal(t, want.Languages(), rs.Languages())
		})
	}
}

func TestLoadDirMergesDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"rules/a.yaml": &fstest.MapFile{Data: []byte(yamlDoc)},
		"rules/b.toml": &fstest.MapFile{Data: []byte(`
[fortran]
name = "Fortran"
extensions = ["f90"]

[[fortran.single_line]]
pattern = "!"
description = "Line comment"
`)},
		"rules/README.md": &fstest.MapFile{Data: []byte("not a rule file")},
	}

	rs, err := rules.LoadDir(fsys, "rules")
	require.NoError(t, err)
	require.Len(t, rs.Languages(), 2)
	assert.Equal(t, "fortran", rs.Languages()[0].Key)
	assert.Equal(t, "lua", rs.Languages()[1].Key)
}

func TestLoadDirDuplicateLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"rules/a.yaml": &fstest.MapFile{Data: []byte(yamlDoc)},
		"rules/b.yaml": &fstest.MapFile{Data: []byte(yamlDoc)},
	}

	_, err := rules.LoadDir(fsys, "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate language found: lua")
}

func TestLoadDirEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"rules/README.md": &fstest.MapFile{Data: []byte("nothing here")},
	}

	_, err := rules.LoadDir(fsys, "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rule documents found")
}

func TestLoadFileRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "missing_name",
			doc: `
lua:
  extensions: [lua]
`,
		},
		{
			name: "extensions_not_a_sequence",
			doc: `
lua:
  name: Lua
  extensions: lua
`,
		},
		{
			name: "single_line_rule_without_pattern",
			doc: `
lua:
  name: Lua
  extensions: [lua]
  single_line:
    - description: Line comment
`,
		},
		{
			name: "multi_line_rule_without_end",
			doc: `
lua:
  name: Lua
  extensions: [lua]
  multi_line:
    - start: "--[["
      description: Block comment
`,
		},
		{
			name: "unknown_field",
			doc: `
lua:
  name: Lua
  extensions: [lua]
  nested_comments: true
`,
		},
		{
			name: "empty_document",
			doc:  `{}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"rules.yaml": &fstest.MapFile{Data: []byte(c.doc)},
			}
			_, err := rules.LoadFile(fsys, "rules.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid rule file")
		})
	}
}

func TestLoadFileUnrecognizedFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.ini": &fstest.MapFile{Data: []byte("[lua]")},
	}
	_, err := rules.LoadFile(fsys, "rules.ini")
	require.Error(t, err)
}

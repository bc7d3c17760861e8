// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document_test

import (
	"testing"

	"carvel.dev/prepare-cspell/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	doc, err := document.NewParser(document.FormatJSON).ParseBytes([]byte(`{
  "version": "0.2",
  "language": "en-US",
  "words": ["zeta", "alpha"],
  "allowCompoundWords": false,
  "maxNumberOfProblems": 1e3,
  "ignoreRegExpList": null
}`), ".cspell.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"version", "language", "words", "allowCompoundWords", "maxNumberOfProblems", "ignoreRegExpList"}, doc.Keys())
	assert.Equal(t, `{"version":"0.2","language":"en-US","words":["zeta","alpha"],"allowCompoundWords":false,"maxNumberOfProblems":1e3,"ignoreRegExpList":null}`,
		document.CompactString(doc))
}

func TestParseJSONDuplicateKeyKeepsFirstPosition(t *testing.T) {
	doc, err := document.NewParser(document.FormatJSON).ParseBytes([]byte(`{"a": 1, "b": 2, "a": 3}`), "dup.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"b":2}`, document.CompactString(doc))
}

func TestParseEmptyObjectIsValid(t *testing.T) {
	doc, err := document.NewParser(document.FormatJSON).ParseBytes([]byte(`{}`), ".cspell.json")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestParseRejectsUnusableInput(t *testing.T) {
	tests := []struct {
		desc   string
		input  string
		errMsg string
	}{
		{"empty", "", "Expected .cspell.json to contain a configuration, but was empty"},
		{"whitespace", " \n\t", "Expected .cspell.json to contain a configuration, but was empty"},
		{"null", "null", "Expected .cspell.json to contain a configuration, but was empty"},
		{"array root", `["a"]`, "Expected .cspell.json to contain a map at its root, but was array"},
		{"string root", `"a"`, "Expected .cspell.json to contain a map at its root, but was scalar"},
		{"trailing data", `{} {}`, "Unmarshaling .cspell.json: Expected a single JSON value, but found trailing data"},
		{"invalid utf-8", "{\"words\": [\"a\xff\"]}", "Unmarshaling .cspell.json: Expected input to be valid UTF-8"},
		{"lone high surrogate", `{"w": "\ud800"}`, "Unmarshaling .cspell.json: Offset 7: unpaired UTF-16 surrogate escape"},
		{"lone low surrogate", `{"w": "\udc00"}`, "Unmarshaling .cspell.json: Offset 7: unpaired UTF-16 surrogate escape"},
		{"high surrogate without low", `{"w": "\ud800\u0041"}`, "Unmarshaling .cspell.json: Offset 7: unpaired UTF-16 surrogate escape"},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := document.NewParser(document.FormatJSON).ParseBytes([]byte(tc.input), ".cspell.json")
			require.EqualError(t, err, tc.errMsg)
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		_, err := document.NewParser(document.FormatJSON).ParseBytes([]byte(`{"words": [}`), ".cspell.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unmarshaling .cspell.json: ")
	})
}

func TestParseJSONKeepsValidEscapes(t *testing.T) {
	doc, err := document.NewParser(document.FormatJSON).ParseBytes([]byte(`{"emoji": "\ud83d\ude00", "literal": "\\ud800", "a": "\u0041"}`), ".cspell.json")
	require.NoError(t, err)
	assert.Equal(t, `{"emoji":"😀","literal":"\\ud800","a":"A"}`, document.CompactString(doc))
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
version: "0.2"
words:
  - zeta
  - alpha
enabled: true
count: 3
ratio: 0.5
nothing: ~
when: 2024-01-01
`)

	doc, err := document.NewParser(document.FormatYAML).ParseBytes(data, "cspell.config.yaml")
	require.NoError(t, err)

	assert.Equal(t, `{"version":"0.2","words":["zeta","alpha"],"enabled":true,"count":3,"ratio":0.5,"nothing":null,"when":"2024-01-01"}`,
		document.CompactString(doc))
}

func TestParseYAMLRejectsUnusableInput(t *testing.T) {
	_, err := document.NewParser(document.FormatYAML).ParseBytes([]byte(""), "cspell.yaml")
	require.EqualError(t, err, "Expected cspell.yaml to contain a configuration, but was empty")

	_, err = document.NewParser(document.FormatYAML).ParseBytes([]byte("- a\n"), "cspell.yaml")
	require.EqualError(t, err, "Expected cspell.yaml to contain a map at its root, but was array")

	_, err = document.NewParser(document.FormatYAML).ParseBytes([]byte("ratio: .inf\n"), "cspell.yaml")
	require.EqualError(t, err, "Unmarshaling cspell.yaml: Line 1: value '.inf' cannot be represented in JSON")
}

func TestParseYAMLAliases(t *testing.T) {
	doc, err := document.NewParser(document.FormatYAML).ParseBytes([]byte("a: &x [1]\nb: *x\n"), "cspell.yaml")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1],"b":[1]}`, document.CompactString(doc))

	t.Run("recursive", func(t *testing.T) {
		_, err := document.NewParser(document.FormatYAML).ParseBytes([]byte("a: &x\n  b: *x\n"), "cspell.yaml")
		require.EqualError(t, err, "Unmarshaling cspell.yaml: Line 2: recursive alias 'x'")
	})

	t.Run("too many expansions", func(t *testing.T) {
		data := []byte(`
a: &a [x, x, x, x, x, x, x, x, x, x]
b: &b [*a, *a, *a, *a, *a, *a, *a, *a, *a, *a]
c: &c [*b, *b, *b, *b, *b, *b, *b, *b, *b, *b]
d: &d [*c, *c, *c, *c, *c, *c, *c, *c, *c, *c]
e: [*d, *d, *d, *d, *d, *d, *d, *d, *d, *d]
`)
		_, err := document.NewParser(document.FormatYAML).ParseBytes(data, "cspell.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected at most 1000 alias expansions")
	})
}

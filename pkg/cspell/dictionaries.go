// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cspell

import (
	"carvel.dev/prepare-cspell/pkg/document"
	"carvel.dev/prepare-cspell/pkg/settings"
)

const (
	DictionariesKey          = "dictionaries"
	DictionaryDefinitionsKey = "dictionaryDefinitions"
)

// BuiltInDictionaries ship with cspell itself.
var BuiltInDictionaries = []string{
	"companies",
	"fonts",
	"html",
	"php",
	"softwareTerms",
	"misc",
	"typescript",
	"node",
	"css",
	"bash",
	"filetypes",
	"npm",
	"lorem-ipsum",
}

type DictionaryDefinition struct {
	Name        string
	Path        string
	Description string
}

// DeclaredDictionaries returns the dictionaries this tool defines: two
// provided by core under the web root and the project's own word list.
func DeclaredDictionaries(webRoot string) []DictionaryDefinition {
	return []DictionaryDefinition{
		{
			Name: "drupal",
			Path: webRoot + "/core/misc/cspell/drupal-dictionary.txt",
		},
		{
			Name: "dictionary",
			Path: webRoot + "/core/misc/cspell/dictionary.txt",
		},
		{
			Name:        "project-words",
			Path:        "./.cspell-project-words.txt",
			Description: "The project's own custom dictionary (optional)",
		},
	}
}

func (d DictionaryDefinition) AsNode() *document.Map {
	result := document.NewMap()
	result.Set("name", document.NewString(d.Name))
	result.Set("path", document.NewString(d.Path))
	if d.Description != "" {
		result.Set("description", document.NewString(d.Description))
	}
	return result
}

func dictionaryNames(defs []DictionaryDefinition) []string {
	var names []string
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return names
}

// Dictionaries enables the built-in and declared dictionaries.
func Dictionaries(doc *document.Map, s settings.Settings) {
	document.MergeUniqueInto(doc, DictionariesKey,
		document.NewStrings(BuiltInDictionaries),
		document.NewStrings(dictionaryNames(DeclaredDictionaries(s.WebRoot))))
}

// DictionaryDefinitions replaces any existing definition sharing a name with
// a declared one. Declared definitions come first, followed by the remaining
// existing definitions in their original order.
func DictionaryDefinitions(doc *document.Map, s settings.Settings) {
	declared := DeclaredDictionaries(s.WebRoot)

	declaredNames := map[string]struct{}{}
	declaredNodes := document.NewArray()
	for _, def := range declared {
		declaredNames[def.Name] = struct{}{}
		declaredNodes.Append(def.AsNode())
	}

	existing, _ := doc.Get(DictionaryDefinitionsKey)
	remaining := withoutNamed(existing, declaredNames)

	doc.Set(DictionaryDefinitionsKey, document.MergeDeep([]document.Node{declaredNodes, remaining}, false))
}

// withoutNamed drops entries whose "name" is in names. Entries without a
// string name are kept.
func withoutNamed(existing document.Node, names map[string]struct{}) document.Node {
	isNamed := func(entry document.Node) bool {
		entryMap, ok := entry.(*document.Map)
		if !ok {
			return false
		}
		nameNode, found := entryMap.Get("name")
		if !found {
			return false
		}
		scalar, ok := nameNode.(document.Scalar)
		if !ok {
			return false
		}
		name, ok := scalar.String()
		if !ok {
			return false
		}
		_, found = names[name]
		return found
	}

	switch typedExisting := existing.(type) {
	case *document.Array:
		result := document.NewArray()
		for _, item := range typedExisting.Items {
			if !isNamed(item) {
				result.Append(item)
			}
		}
		return result

	case *document.Map:
		result := document.NewMap()
		typedExisting.Iterate(func(k string, v document.Node) {
			if !isNamed(v) {
				result.Set(k, v)
			}
		})
		return result

	default:
		return document.NewArray()
	}
}

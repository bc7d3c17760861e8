// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cspell

import (
	"carvel.dev/prepare-cspell/pkg/document"
	"carvel.dev/prepare-cspell/pkg/files"
	"carvel.dev/prepare-cspell/pkg/settings"
)

const (
	WordsKey     = "words"
	FlagWordsKey = "flagWords"
)

// ToolWords name local development tools that show up in project files.
var ToolWords = []string{"lando", "ddev"}

// Words adds the project word, words from settings, module name parts and
// ToolWords to the "words" list. It always writes the field.
func Words(doc *document.Map, s settings.Settings, scan files.ScanResult) {
	var additions []string

	if s.ProjectWord != "" {
		additions = append(additions, s.ProjectWord)
	}
	additions = append(additions, s.Words...)
	additions = append(additions, scan.ModuleNameParts...)
	additions = append(additions, ToolWords...)

	document.MergeUniqueInto(doc, WordsKey, document.NewStrings(additions))
}

// FlagWords adds flagged words from settings. Unlike Words, nothing is
// written when no flagged words were provided.
func FlagWords(doc *document.Map, s settings.Settings) {
	if s.FlagWords == nil {
		return
	}
	document.MergeUniqueInto(doc, FlagWordsKey, document.NewStrings(s.FlagWords))
}

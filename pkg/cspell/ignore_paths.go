// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cspell

import (
	"carvel.dev/prepare-cspell/pkg/document"
	"carvel.dev/prepare-cspell/pkg/files"
	"carvel.dev/prepare-cspell/pkg/settings"
)

const IgnorePathsKey = "ignorePaths"

// StandardIgnorePatterns are ignored together with the standard files found
// by the scan, unless standard files are explicitly included.
var StandardIgnorePatterns = []string{
	"**/.*.json",
	"package.json",
	"yarn.lock",
	"phpstan*",
	".*ignore",
}

func IgnorePaths(doc *document.Map, s settings.Settings, scan files.ScanResult) {
	paths := s.NonProjectDirectories()

	if s.IncludeStandardFiles {
		paths = append(paths, StandardIgnorePatterns...)
		paths = append(paths, scan.StandardFiles...)
	}
	paths = append(paths, s.IgnorePaths...)

	document.MergeUniqueInto(doc, IgnorePathsKey, document.NewStrings(paths))
}

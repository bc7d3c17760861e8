// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cspell

import (
	"time"

	"carvel.dev/prepare-cspell/pkg/cmd/ui"
	"carvel.dev/prepare-cspell/pkg/document"
	"carvel.dev/prepare-cspell/pkg/files"
	"carvel.dev/prepare-cspell/pkg/settings"
)

type Preparer struct {
	settings settings.Settings
	root     string
	ui       ui.UI
}

// NewPreparer returns a Preparer that scans the project found at root.
func NewPreparer(s settings.Settings, root string, ui ui.UI) Preparer {
	return Preparer{s, root, ui}
}

// Prepare updates doc in place. It fails only when the project cannot be
// scanned; doc is left untouched in that case.
func (p Preparer) Prepare(doc *document.Map) error {
	t1 := time.Now()

	if msg := CheckConfigVersion(doc); msg != "" {
		p.ui.Warnf("%s\n", msg)
	}

	scan, err := files.NewScanner(p.settings.NonProjectDirectories(), p.ui).Scan(p.root)
	if err != nil {
		return err
	}

	p.ui.Debugf("scan: %d files, %d module name parts, %d standard files (%s)\n",
		scan.ScannedFiles, len(scan.ModuleNameParts), len(scan.StandardFiles), time.Now().Sub(t1))

	Words(doc, p.settings, scan)
	FlagWords(doc, p.settings)
	IgnorePaths(doc, p.settings, scan)
	Dictionaries(doc, p.settings)
	DictionaryDefinitions(doc, p.settings)

	return nil
}

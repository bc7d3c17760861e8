// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ModuleDescriptorSuffix ends the names of module descriptor files, eg
// "my_module.info.yml".
const ModuleDescriptorSuffix = ".info.yml"

// StandardFileNames are compared against file names cut at their first dot,
// regardless of case (LICENSE.txt, composer.json, ChangeLog.md, ...).
var StandardFileNames = []string{
	"license",
	"copyright",
	"maintainers",
	"changelog",
	"composer",
}

type ScanResult struct {
	// ModuleNameParts holds the underscore-separated pieces of every module
	// descriptor name, in walk order.
	ModuleNameParts []string

	// StandardFiles holds "./"-prefixed, slash-separated paths relative to
	// the scanned root.
	StandardFiles []string

	ScannedFiles int
}

type Scanner struct {
	excludedDirs []string
	ui           UI
}

func NewScanner(excludedDirs []string, ui UI) Scanner {
	return Scanner{excludedDirs, ui}
}

// Scan walks root once in lexical order. Any directory whose path contains
// "/<excluded>/" (case-insensitively, at any depth) is skipped with all of
// its contents. Symlinks are not followed.
func (s Scanner) Scan(root string) (ScanResult, error) {
	var result ScanResult

	err := filepath.WalkDir(root, func(walkedPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, walkedPath)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		displayPath := "./" + filepath.ToSlash(relPath)

		if d.IsDir() {
			if s.isExcluded(displayPath + "/") {
				s.ui.Debugf("scan: skipping %s\n", displayPath)
				return filepath.SkipDir
			}
			return nil
		}

		result.ScannedFiles++

		if parts, found := moduleNameParts(d.Name()); found {
			s.ui.Debugf("scan: module descriptor %s\n", displayPath)
			result.ModuleNameParts = append(result.ModuleNameParts, parts...)
		}
		if isStandardFile(d.Name()) {
			result.StandardFiles = append(result.StandardFiles, displayPath)
		}
		return nil
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("Scanning project '%s': %s", root, err)
	}

	return result, nil
}

func (s Scanner) isExcluded(path string) bool {
	lowerPath := strings.ToLower(path)
	for _, dir := range s.excludedDirs {
		if dir == "" {
			continue
		}
		if strings.Contains(lowerPath, "/"+strings.ToLower(dir)+"/") {
			return true
		}
	}
	return false
}

func moduleNameParts(name string) ([]string, bool) {
	if !strings.HasSuffix(strings.ToLower(name), ModuleDescriptorSuffix) {
		return nil, false
	}

	var parts []string
	for _, part := range strings.Split(name[:len(name)-len(ModuleDescriptorSuffix)], "_") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts, true
}

func isStandardFile(name string) bool {
	stem, _, _ := strings.Cut(name, ".")
	stem = strings.ToLower(stem)

	for _, standardName := range StandardFileNames {
		if stem == standardName {
			return true
		}
	}
	return false
}

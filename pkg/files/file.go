// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"path/filepath"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
)

type Type int

const (
	TypeJSON Type = iota
	TypeYAML
)

// File is an input configuration. Anything not named like YAML is read as
// JSON, which covers ".cspell.json" as well as extension-less names.
type File struct {
	src Source
}

func NewFile(src Source) *File { return &File{src} }

func (r *File) Description() string    { return r.src.Description() }
func (r *File) Path() string           { return r.src.Path() }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	if r.matchesExt(yamlExts) {
		return TypeYAML
	}
	return TypeJSON
}

func (r *File) matchesExt(exts []string) bool {
	filename := strings.ToLower(filepath.Base(r.Path()))
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

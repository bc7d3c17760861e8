// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

// Create writes the file, replacing any previous content. Missing parent
// directories are created.
func (f OutputFile) Create() error {
	dir := filepath.Dir(f.path)

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("Creating directory '%s': %s", dir, err)
	}

	fd, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Opening file '%s': %s", f.path, err)
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	if err != nil {
		return fmt.Errorf("Writing file '%s': %s", f.path, err)
	}
	return nil
}

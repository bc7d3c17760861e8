// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/prepare-cspell/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cspell.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	src := files.NewSource(path)
	data, err := src.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)

	_, err = files.NewSource(path + ".missing").Bytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Reading file '"+path+".missing': ")
}

func TestFileType(t *testing.T) {
	tests := map[string]files.Type{
		".cspell.json":       files.TypeJSON,
		"cspell.json":        files.TypeJSON,
		".cspell.json.txt":   files.TypeJSON,
		"cspell.config.yaml": files.TypeYAML,
		"CSPELL.YML":         files.TypeYAML,
	}
	for path, expected := range tests {
		file := files.NewFile(files.NewBytesSource(path, nil))
		assert.Equal(t, expected, file.Type(), "path %s", path)
	}
}

func TestOutputFileCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", ".cspell.json.txt")
	require.NoError(t, files.NewOutputFile(path, []byte("first")).Create())
	require.NoError(t, files.NewOutputFile(path, []byte("2")).Create())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
}

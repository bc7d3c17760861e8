// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Expects the binary to be built first:
//
//	go build -o prepare-cspell ./cmd/prepare-cspell
const binaryPath = "../../prepare-cspell"

func TestPrepareInProjectDirectory(t *testing.T) {
	dir := newProject(t, `{"version": "0.2"}`)

	runPrepareCspell(t, dir, []string{"CI_PROJECT_NAME=foo_bar-1234", "_WEB_ROOT=public"})

	output, err := os.ReadFile(filepath.Join(dir, ".cspell.json.txt"))
	require.NoError(t, err)

	require.Contains(t, string(output), `"foo_bar",`)
	require.Contains(t, string(output), `"./CHANGELOG.txt"`)
	require.Contains(t, string(output), `"path": "public/core/misc/cspell/dictionary.txt"`)
}

func TestCustomOutputPath(t *testing.T) {
	dir := newProject(t, `{}`)

	runPrepareCspell(t, dir, nil, ".cspell.json", "out/cspell.json")

	_, err := os.Stat(filepath.Join(dir, "out", "cspell.json"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".cspell.json.txt"))
	require.True(t, os.IsNotExist(err))
}

func TestEmptyInputFails(t *testing.T) {
	dir := newProject(t, "")

	command := newCommand(t, dir, nil)
	stdErr := bytes.NewBufferString("")
	command.Stderr = stdErr

	err := command.Run()
	require.Error(t, err)
	require.True(t, strings.HasPrefix(stdErr.String(), "prepare-cspell: Error: "), stdErr.String())

	_, err = os.Stat(filepath.Join(dir, ".cspell.json.txt"))
	require.True(t, os.IsNotExist(err))
}

func newProject(t *testing.T, config string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cspell.json"), []byte(config), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo_bar.info.yml"), []byte("name: Foo"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.txt"), []byte("1.0"), 0644))
	return dir
}

func newCommand(t *testing.T, dir string, envs []string, args ...string) *exec.Cmd {
	absBinaryPath, err := filepath.Abs(binaryPath)
	require.NoError(t, err)

	if _, err := os.Stat(absBinaryPath); err != nil {
		t.Skipf("Binary '%s' not built: %s", absBinaryPath, err)
	}

	command := exec.Command(absBinaryPath, args...)
	command.Dir = dir
	command.Env = envs
	return command
}

func runPrepareCspell(t *testing.T, dir string, envs []string, args ...string) string {
	command := newCommand(t, dir, envs, args...)
	stdError := bytes.NewBufferString("")
	command.Stderr = stdError

	output, err := command.Output()
	require.NoError(t, err, stdError.String())

	return string(output)
}

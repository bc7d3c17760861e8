// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
)

type Source interface {
	Description() string
	Path() string
	Bytes() ([]byte, error)
}

var _ []Source = []Source{BytesSource{}, StdinSource{}, LocalSource{}}

// NewSource picks a source for path; "-" stands for standard input.
func NewSource(path string) Source {
	if path == "-" {
		return StdinSource{}
	}
	return NewLocalSource(path)
}

type BytesSource struct {
	path string
	data []byte
}

func NewBytesSource(path string, data []byte) BytesSource { return BytesSource{path, data} }

func (s BytesSource) Description() string    { return s.path }
func (s BytesSource) Path() string           { return s.path }
func (s BytesSource) Bytes() ([]byte, error) { return s.data, nil }

type StdinSource struct{}

func (s StdinSource) Description() string    { return "stdin.json" }
func (s StdinSource) Path() string           { return "stdin.json" }
func (s StdinSource) Bytes() ([]byte, error) { return ReadStdin() }

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string { return fmt.Sprintf("file '%s'", s.path) }
func (s LocalSource) Path() string        { return s.path }

func (s LocalSource) Bytes() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", s.Description(), err)
	}
	return data, nil
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
prepare-cspell.

From top-down, the code is layered in this way:

# Entry Point

	./cmd/prepare-cspell       // the command-line tool

# Commands

The root command reads its inputs (arguments, flags, environment) and hands
them to the layers below. "version" is the only subcommand.

	pkg/cmd
	pkg/cmd/ui

# Preparation

Settings are parsed once from raw strings; the Preparer scans the project and
updates the configuration field by field.

	pkg/settings
	pkg/cspell

# Configuration Document

The configuration is held as a tree of document.Node's. The package parses
JSON and YAML with key order intact, prints JSON, and implements the two merge
flavors (deep merge and deduplicating list merge).

	pkg/document
	pkg/orderedmap

# Utilities

	pkg/files    // input sources, output file, project scanner
	pkg/version
*/
package pkg

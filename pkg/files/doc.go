// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading the input configuration from a
Source, writing the result as an OutputFile, and scanning the project tree
for the names and paths the configuration should know about.

This allows the rest of prepare-cspell to work with bytes and scan results
without becoming entangled in the details of the filesystem.
*/
package files

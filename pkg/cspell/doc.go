// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cspell fills a cspell configuration with what is known about the
project: allowed and flagged words, paths to ignore, and dictionaries.

Front-and-center is Preparer. It scans the project once and then updates the
configuration document in place, field by field.
*/
package cspell

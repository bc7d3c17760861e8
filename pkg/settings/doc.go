// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package settings turns the raw strings handed to prepare-cspell (environment
variables, possibly overridden by flags) into a Settings value.

Raw strings are parsed exactly once, here; the rest of the code only sees
typed fields.
*/
package settings

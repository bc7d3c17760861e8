// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to prepare-cspell's commands -- instances of
cobra.Command (not to be confused with ./cmd which contains the bootstrapping
for executing prepare-cspell).

Front-and-center is PrepareOptions. This is both the host of settings parsed
from the command-line and environment through Cobra AND the top-level logic
that implements the command.
*/
package cmd

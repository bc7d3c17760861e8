// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"carvel.dev/prepare-cspell/pkg/cmd"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
)

func main() {
	command := cmd.NewDefaultCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "prepare-cspell: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/prepare-cspell/pkg/settings"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/pflag"
)

// EnvFlag is a string flag backed by an environment variable: a value given
// on the command line wins, otherwise Resolve picks up the variable.
type EnvFlag struct {
	env        string
	lookupFunc settings.LookupFunc

	value string
	set   bool
}

var _ pflag.Value = &EnvFlag{}
var _ cobrautil.ResolvableFlag = &EnvFlag{}

func NewEnvFlag(env string, lookupFunc settings.LookupFunc) *EnvFlag {
	return &EnvFlag{env: env, lookupFunc: lookupFunc}
}

func (f *EnvFlag) Set(val string) error {
	f.value = val
	f.set = true
	return nil
}

func (f *EnvFlag) Type() string   { return "string" }
func (f *EnvFlag) String() string { return f.value }
func (f *EnvFlag) Env() string    { return f.env }
func (f *EnvFlag) Value() string  { return f.value }

func (f *EnvFlag) Resolve() error {
	if f.set {
		return nil
	}
	if val, found := f.lookupFunc(f.env); found {
		f.value = val
	}
	return nil
}

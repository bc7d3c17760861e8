// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

type UI interface {
	Debugf(string, ...interface{})
}

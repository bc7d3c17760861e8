// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map is crucial in keeping the written cspell configuration
stable: keys come out in the order they were read, and new keys are added at
the end.
*/
package orderedmap

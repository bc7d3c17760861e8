// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package document holds a cspell configuration as a tree of document.Node's:
a Map (ordered keys), an Array or a Scalar.

The tree is read from JSON (or YAML) with key order intact, changed in place
and written back out with JSONPrinter. MergeDeep and MergeUnique implement
the two ways lists and maps are combined.
*/
package document

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

// MergeUnique concatenates the entries of existing with additions and drops
// repeated values, keeping each value at the position of its first
// occurrence. existing may be nil (absent field); a Map contributes its
// values in order and a non-null Scalar is taken as a single entry.
func MergeUnique(existing Node, additions ...[]Node) *Array {
	var all []Node

	switch typedExisting := existing.(type) {
	case *Array:
		all = append(all, typedExisting.Items...)
	case *Map:
		typedExisting.Iterate(func(_ string, v Node) {
			all = append(all, v)
		})
	case Scalar:
		if !typedExisting.IsNull() {
			all = append(all, typedExisting)
		}
	}

	for _, addition := range additions {
		all = append(all, addition...)
	}

	seen := map[string]struct{}{}
	result := NewArray()

	for _, item := range all {
		key := CompactString(item)
		if _, found := seen[key]; found {
			continue
		}
		seen[key] = struct{}{}
		result.Append(item)
	}
	return result
}

// MergeUniqueInto replaces the list at key in doc with the deduplicated
// combination of its current value and additions.
func MergeUniqueInto(doc *Map, key string, additions ...[]Node) {
	existing, _ := doc.Get(key)
	doc.Set(key, MergeUnique(existing, additions...))
}

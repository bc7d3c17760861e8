// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"strconv"
)

// MergeDeep combines values left to right:
//   - array items (and map keys spelled as integers) are appended when
//     preserveIndices is false, so positional entries concatenate;
//   - a key present on both sides holding a Map or Array on both sides is
//     merged recursively with the same preserveIndices;
//   - otherwise the later value replaces the earlier one in place.
//
// Scalar inputs contribute nothing. The result is an Array when its keys end
// up being exactly 0..n-1 in order, and a Map otherwise. Inputs are not
// modified and share no nodes with the result.
func MergeDeep(values []Node, preserveIndices bool) Node {
	result := &mergeResult{preserveIndices: preserveIndices}

	for _, value := range values {
		switch typedVal := value.(type) {
		case *Map:
			typedVal.Iterate(func(k string, v Node) {
				result.add(newMergeKey(k), v)
			})
		case *Array:
			for i, item := range typedVal.Items {
				result.add(mergeKey{index: i, isIndex: true}, item)
			}
		}
	}

	return result.asNode()
}

type mergeKey struct {
	name    string
	index   int
	isIndex bool
}

// newMergeKey treats keys written as canonical decimal integers ("0", "12",
// "-3" but not "012" or "+1") as positions.
func newMergeKey(name string) mergeKey {
	if idx, ok := canonicalIndex(name); ok {
		return mergeKey{index: idx, isIndex: true}
	}
	return mergeKey{name: name}
}

func canonicalIndex(name string) (int, bool) {
	idx, err := strconv.Atoi(name)
	if err != nil || strconv.Itoa(idx) != name {
		return 0, false
	}
	return idx, true
}

func (k mergeKey) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

type mergeEntry struct {
	key   mergeKey
	value Node
}

type mergeResult struct {
	preserveIndices bool
	entries         []*mergeEntry
	nextIndex       int
}

func (r *mergeResult) add(key mergeKey, value Node) {
	if key.isIndex && !r.preserveIndices {
		r.append(value)
		return
	}

	for _, entry := range r.entries {
		if entry.key != key {
			continue
		}
		if IsStructure(entry.value) && IsStructure(value) {
			entry.value = MergeDeep([]Node{entry.value, value}, r.preserveIndices)
		} else {
			entry.value = value.DeepCopyAsNode()
		}
		return
	}

	r.entries = append(r.entries, &mergeEntry{key, value.DeepCopyAsNode()})
	if key.isIndex && key.index >= r.nextIndex {
		r.nextIndex = key.index + 1
	}
}

func (r *mergeResult) append(value Node) {
	r.entries = append(r.entries, &mergeEntry{mergeKey{index: r.nextIndex, isIndex: true}, value.DeepCopyAsNode()})
	r.nextIndex++
}

func (r *mergeResult) isList() bool {
	for i, entry := range r.entries {
		if !entry.key.isIndex || entry.key.index != i {
			return false
		}
	}
	return true
}

func (r *mergeResult) asNode() Node {
	if r.isList() {
		result := NewArray()
		for _, entry := range r.entries {
			result.Append(entry.value)
		}
		return result
	}

	result := NewMap()
	for _, entry := range r.entries {
		result.Set(entry.key.String(), entry.value)
	}
	return result
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"carvel.dev/prepare-cspell/pkg/orderedmap"
)

type Kind int

const (
	KindScalar Kind = iota
	KindMap
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	default:
		return "scalar"
	}
}

type Node interface {
	Kind() Kind
	DeepCopyAsNode() Node

	sealed() // limit the concrete types of Node to the JSON value kinds
}

var _ = []Node{&Map{}, &Array{}, Scalar{}}

type Map struct {
	items orderedmap.Map[Node]
}

type Array struct {
	Items []Node
}

// Scalar holds a string, json.Number, bool or nil.
type Scalar struct {
	Value interface{}
}

func NewMap() *Map { return &Map{} }

func NewArray(items ...Node) *Array { return &Array{Items: items} }

func NewString(val string) Scalar { return Scalar{val} }

func NewStrings(vals []string) []Node {
	result := make([]Node, 0, len(vals))
	for _, val := range vals {
		result = append(result, NewString(val))
	}
	return result
}

func Null() Scalar { return Scalar{} }

func (n *Map) Kind() Kind   { return KindMap }
func (n *Array) Kind() Kind { return KindArray }
func (n Scalar) Kind() Kind { return KindScalar }

func (n *Map) Get(key string) (Node, bool) { return n.items.Get(key) }
func (n *Map) Set(key string, val Node)    { n.items.Set(key, val) }
func (n *Map) Delete(key string) bool      { return n.items.Delete(key) }
func (n *Map) Keys() []string              { return n.items.Keys() }
func (n *Map) Len() int                    { return n.items.Len() }

func (n *Map) Iterate(iterFunc func(k string, v Node)) { n.items.Iterate(iterFunc) }

func (n *Array) Append(vals ...Node) { n.Items = append(n.Items, vals...) }

func (n Scalar) IsNull() bool { return n.Value == nil }

// String returns the scalar's value when it is a string.
func (n Scalar) String() (string, bool) {
	str, ok := n.Value.(string)
	return str, ok
}

func (n *Map) DeepCopyAsNode() Node {
	result := NewMap()
	n.Iterate(func(k string, v Node) {
		result.Set(k, v.DeepCopyAsNode())
	})
	return result
}

func (n *Array) DeepCopyAsNode() Node {
	result := &Array{Items: make([]Node, 0, len(n.Items))}
	for _, item := range n.Items {
		result.Items = append(result.Items, item.DeepCopyAsNode())
	}
	return result
}

func (n Scalar) DeepCopyAsNode() Node { return n }

func (n *Map) sealed()   {}
func (n *Array) sealed() {}
func (n Scalar) sealed() {}

// IsStructure reports whether node holds children (ie is a Map or an Array).
func IsStructure(node Node) bool {
	switch node.(type) {
	case *Map, *Array:
		return true
	default:
		return false
	}
}

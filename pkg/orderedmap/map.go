// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

// Map keeps its items in insertion order. Setting an existing key replaces
// the value in place, so the key keeps its original position.
type Map[V any] struct {
	items []MapItem[V]
}

type MapItem[V any] struct {
	Key   string
	Value V
}

func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

func NewMapWithItems[V any](items []MapItem[V]) *Map[V] {
	return &Map[V]{items}
}

func (m *Map[V]) Set(key string, value V) {
	for i, item := range m.items {
		if item.Key == key {
			m.items[i].Value = value
			return
		}
	}
	m.items = append(m.items, MapItem[V]{key, value})
}

func (m *Map[V]) Get(key string) (V, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	var zero V
	return zero, false
}

func (m *Map[V]) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map[V]) Keys() (keys []string) {
	m.Iterate(func(k string, _ V) {
		keys = append(keys, k)
	})
	return
}

func (m *Map[V]) Iterate(iterFunc func(k string, v V)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map[V]) IterateErr(iterFunc func(k string, v V) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map[V]) Len() int { return len(m.items) }

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"carvel.dev/prepare-cspell/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetKeepsPositionOfExistingKey(t *testing.T) {
	m := orderedmap.NewMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	require.Equal(t, []string{"b", "a"}, m.Keys())
	val, found := m.Get("b")
	require.True(t, found)
	assert.Equal(t, 3, val)
}

func TestDelete(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem[string]{
		{Key: "x", Value: "1"}, {Key: "y", Value: "2"}, {Key: "z", Value: "3"},
	})

	assert.True(t, m.Delete("y"))
	assert.False(t, m.Delete("y"))
	assert.Equal(t, []string{"x", "z"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	_, found := m.Get("y")
	assert.False(t, found)
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document_test

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"carvel.dev/prepare-cspell/pkg/document"
)

// fromGo builds a node out of plain Go values. Keys of native maps are sorted.
func fromGo(val interface{}) document.Node {
	switch typedVal := val.(type) {
	case document.Node:
		return typedVal

	case map[string]interface{}:
		keys := make([]string, 0, len(typedVal))
		for k := range typedVal {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		result := document.NewMap()
		for _, k := range keys {
			result.Set(k, fromGo(typedVal[k]))
		}
		return result

	case []interface{}:
		result := document.NewArray()
		for _, item := range typedVal {
			result.Append(fromGo(item))
		}
		return result

	case []string:
		return document.NewArray(document.NewStrings(typedVal)...)

	case nil, string, bool, json.Number:
		return document.Scalar{Value: typedVal}

	case int:
		return document.Scalar{Value: json.Number(strconv.Itoa(typedVal))}

	case int64:
		return document.Scalar{Value: json.Number(strconv.FormatInt(typedVal, 10))}

	case float64:
		return document.Scalar{Value: json.Number(strconv.FormatFloat(typedVal, 'g', -1, 64))}

	default:
		panic(fmt.Sprintf("Unexpected value of type %T", val))
	}
}

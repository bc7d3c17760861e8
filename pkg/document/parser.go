// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// MaxAliasExpansions bounds how many YAML alias references are expanded
// while converting a single document.
const MaxAliasExpansions = 1000

type Parser struct {
	format Format
}

func NewParser(format Format) Parser { return Parser{format} }

// ParseBytes parses data into a document whose root must be a mapping.
// Empty input, null and non-mapping roots are rejected.
func (p Parser) ParseBytes(data []byte, associatedName string) (*Map, error) {
	var (
		node Node
		err  error
	)

	switch p.format {
	case FormatYAML:
		node, err = p.parseYAML(data)
	default:
		node, err = p.parseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("Unmarshaling %s: %s", associatedName, err)
	}

	switch typedNode := node.(type) {
	case *Map:
		return typedNode, nil
	case Scalar:
		if typedNode.IsNull() {
			return nil, fmt.Errorf("Expected %s to contain a configuration, but was empty", associatedName)
		}
	}
	return nil, fmt.Errorf("Expected %s to contain a map at its root, but was %s", associatedName, node.Kind())
}

func (p Parser) parseJSON(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Null(), nil
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("Expected input to be valid UTF-8")
	}
	if err := checkSurrogateEscapes(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := p.parseJSONValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("Expected a single JSON value, but found trailing data")
	}
	return node, nil
}

func (p Parser) parseJSONValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch typedTok := tok.(type) {
	case json.Delim:
		switch typedTok {
		case '{':
			result := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("Expected object key to be a string, but was %T", keyTok)
				}
				val, err := p.parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				result.Set(key, val)
			}
			_, err := dec.Token()
			return result, err

		case '[':
			result := NewArray()
			for dec.More() {
				val, err := p.parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				result.Append(val)
			}
			_, err := dec.Token()
			return result, err

		default:
			return nil, fmt.Errorf("Unexpected delimiter '%s'", typedTok)
		}

	default:
		return Scalar{typedTok}, nil
	}
}

func (p Parser) parseYAML(data []byte) (Node, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	conv := &yamlConverter{expanding: map[*yaml.Node]bool{}}
	return conv.fromYAMLNode(root.Content[0])
}

// checkSurrogateEscapes rejects \u escapes that encode half of a UTF-16
// surrogate pair without its other half.
func checkSurrogateEscapes(data []byte) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		if i+1 >= len(data) || data[i+1] != 'u' {
			i++
			continue
		}
		r, ok := escapedRune(data, i)
		if !ok {
			i++
			continue
		}
		switch {
		case r >= 0xD800 && r < 0xDC00:
			low, ok := escapedRune(data, i+6)
			if !ok || low < 0xDC00 || low > 0xDFFF {
				return fmt.Errorf("Offset %d: unpaired UTF-16 surrogate escape", i)
			}
			i += 11
		case r >= 0xDC00 && r <= 0xDFFF:
			return fmt.Errorf("Offset %d: unpaired UTF-16 surrogate escape", i)
		default:
			i += 5
		}
	}
	return nil
}

// escapedRune decodes the \uXXXX escape starting at data[i].
func escapedRune(data []byte, i int) (rune, bool) {
	if i+6 > len(data) || data[i] != '\\' || data[i+1] != 'u' {
		return 0, false
	}
	val, err := strconv.ParseUint(string(data[i+2:i+6]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(val), true
}

type yamlConverter struct {
	expanding  map[*yaml.Node]bool
	expansions int
}

func (p *yamlConverter) fromYAMLNode(node *yaml.Node) (Node, error) {
	if node.Anchor != "" && node.Kind != yaml.AliasNode {
		p.expanding[node] = true
		defer delete(p.expanding, node)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return p.fromYAMLNode(node.Content[0])

	case yaml.AliasNode:
		if p.expanding[node.Alias] {
			return nil, fmt.Errorf("Line %d: recursive alias '%s'", node.Line, node.Value)
		}
		p.expansions++
		if p.expansions > MaxAliasExpansions {
			return nil, fmt.Errorf("Line %d: expected at most %d alias expansions", node.Line, MaxAliasExpansions)
		}
		return p.fromYAMLNode(node.Alias)

	case yaml.MappingNode:
		result := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Tag == "!!merge" {
				return nil, fmt.Errorf("Line %d: merge keys are not supported", keyNode.Line)
			}
			val, err := p.fromYAMLNode(valNode)
			if err != nil {
				return nil, err
			}
			result.Set(keyNode.Value, val)
		}
		return result, nil

	case yaml.SequenceNode:
		result := NewArray()
		for _, itemNode := range node.Content {
			val, err := p.fromYAMLNode(itemNode)
			if err != nil {
				return nil, err
			}
			result.Append(val)
		}
		return result, nil

	case yaml.ScalarNode:
		return p.fromYAMLScalar(node)

	default:
		return nil, fmt.Errorf("Line %d: unexpected YAML node kind %d", node.Line, node.Kind)
	}
}

func (p *yamlConverter) fromYAMLScalar(node *yaml.Node) (Node, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil

	case "!!bool":
		var val bool
		if err := node.Decode(&val); err != nil {
			return nil, err
		}
		return Scalar{val}, nil

	case "!!int":
		var val int64
		if err := node.Decode(&val); err != nil {
			return nil, err
		}
		return Scalar{json.Number(strconv.FormatInt(val, 10))}, nil

	case "!!float":
		var val float64
		if err := node.Decode(&val); err != nil {
			return nil, err
		}
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil, fmt.Errorf("Line %d: value '%s' cannot be represented in JSON", node.Line, node.Value)
		}
		return Scalar{json.Number(strconv.FormatFloat(val, 'g', -1, 64))}, nil

	default:
		return Scalar{node.Value}, nil
	}
}

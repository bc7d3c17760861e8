// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const printerIndent = "    "

// JSONPrinter writes nodes as JSON keeping map key order. Slashes and HTML
// characters are left unescaped so paths stay readable in diffs.
type JSONPrinter struct {
	writer  io.Writer
	compact bool
}

func NewJSONPrinter(writer io.Writer) JSONPrinter {
	return JSONPrinter{writer: writer}
}

func NewCompactJSONPrinter(writer io.Writer) JSONPrinter {
	return JSONPrinter{writer: writer, compact: true}
}

func (p JSONPrinter) Print(node Node) error {
	buf := new(bytes.Buffer)

	err := p.print(node, "", buf)
	if err != nil {
		return err
	}
	if !p.compact {
		buf.WriteString("\n")
	}

	_, err = p.writer.Write(buf.Bytes())
	return err
}

func (p JSONPrinter) print(node Node, indent string, buf *bytes.Buffer) error {
	switch typedNode := node.(type) {
	case *Map:
		if typedNode.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{")
		first := true
		err := typedNode.items.IterateErr(func(k string, v Node) error {
			p.separator(first, indent+printerIndent, buf)
			first = false
			err := p.printScalar(k, buf)
			if err != nil {
				return err
			}
			buf.WriteString(":")
			if !p.compact {
				buf.WriteString(" ")
			}
			return p.print(v, indent+printerIndent, buf)
		})
		if err != nil {
			return err
		}
		p.closing(indent, buf)
		buf.WriteString("}")

	case *Array:
		if len(typedNode.Items) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[")
		for i, item := range typedNode.Items {
			p.separator(i == 0, indent+printerIndent, buf)
			err := p.print(item, indent+printerIndent, buf)
			if err != nil {
				return err
			}
		}
		p.closing(indent, buf)
		buf.WriteString("]")

	case Scalar:
		return p.printScalar(typedNode.Value, buf)

	default:
		return fmt.Errorf("Unexpected node of type %T", node)
	}
	return nil
}

func (p JSONPrinter) separator(first bool, indent string, buf *bytes.Buffer) {
	if !first {
		buf.WriteString(",")
	}
	if !p.compact {
		buf.WriteString("\n" + indent)
	}
}

func (p JSONPrinter) closing(indent string, buf *bytes.Buffer) {
	if !p.compact {
		buf.WriteString("\n" + indent)
	}
}

func (p JSONPrinter) printScalar(val interface{}, buf *bytes.Buffer) error {
	scalarBuf := new(bytes.Buffer)

	enc := json.NewEncoder(scalarBuf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(val)
	if err != nil {
		return fmt.Errorf("Marshaling value '%v': %s", val, err)
	}
	buf.Write(bytes.TrimSuffix(scalarBuf.Bytes(), []byte("\n")))
	return nil
}

// AsBytes returns the indented JSON form of node.
func AsBytes(node Node) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := NewJSONPrinter(buf).Print(node)
	return buf.Bytes(), err
}

// CompactString returns the single-line JSON form of node. Equal values
// always produce the same string.
func CompactString(node Node) string {
	buf := new(bytes.Buffer)
	err := NewCompactJSONPrinter(buf).Print(node)
	if err != nil {
		panic(fmt.Sprintf("Compacting node: %s", err))
	}
	return buf.String()
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rawprops

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/ettle/strcase"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON returns the properties of the given JSON object,
// in document order.
func ParseJSON(data []byte) (*RawProps, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("rawprops.ParseJSON: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("rawprops.ParseJSON: expected an object, but got %v", tok)
	}
	rp := New(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("rawprops.ParseJSON: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("rawprops.ParseJSON: expected a property name, but got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("rawprops.ParseJSON: property %q: %w", name, err)
		}
		rp.Set(name, v)
	}
	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return nil, fmt.Errorf("rawprops.ParseJSON: unterminated object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("rawprops.ParseJSON: unexpected data after the object")
	}
	return rp, nil
}

// ParseYAML returns the properties of the given YAML mapping,
// in document order.
func ParseYAML(data []byte) (*RawProps, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rawprops.ParseYAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return New(0), nil
	}
	return FromYAMLNode(doc.Content[0])
}

// FromYAMLNode returns the properties of the given YAML mapping node,
// in document order. It is useful for documents holding several
// property sets.
func FromYAMLNode(node *yaml.Node) (*RawProps, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rawprops: line %d: expected a mapping", node.Line)
	}
	rp := New(len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		kn, vn := node.Content[i], node.Content[i+1]
		var v any
		if err := vn.Decode(&v); err != nil {
			return nil, fmt.Errorf("rawprops: line %d: property %q: %w", vn.Line, kn.Value, err)
		}
		rp.Set(kn.Value, v)
	}
	return rp, nil
}

// ParseCSS returns the properties of the given CSS declaration list,
// such as "resize-mode: cover; blur-radius: 2". Kebab-case names are
// converted to the camelCase names the property layers use; other names
// are kept as they are. All values are strings.
func ParseCSS(decls string) (*RawProps, error) {
	decls = strings.TrimSpace(decls)
	// the parser is strict about the final semicolon
	if decls != "" && !strings.HasSuffix(decls, ";") {
		decls += ";"
	}
	ds, err := parser.ParseDeclarations(decls)
	if err != nil {
		return nil, fmt.Errorf("rawprops.ParseCSS: %w", err)
	}
	rp := New(len(ds))
	for _, d := range ds {
		name := d.Property
		if strings.Contains(name, "-") {
			name = strcase.ToCamel(name)
		}
		rp.Set(name, d.Value)
	}
	return rp, nil
}

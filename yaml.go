/*
 * yaml.go, part of raspa-ase.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package raspa

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLParse builds a parameter tree from a YAML document. The document must
// be a mapping at top level. Key order is preserved (the yaml.v3 node API
// keeps document order, unlike unmarshalling into a Go map), which matters
// because the order of a parameter tree is the order of the input file.
func YAMLParse(data []byte) (*Params, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, CError{err.Error(), []string{"YAMLParse"}}
	}
	if len(root.Content) == 0 {
		return NewParams(), nil //empty document
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, CError{"top-level YAML node must be a mapping", []string{"YAMLParse"}}
	}
	P, err := yamlMapping(doc)
	if err != nil {
		return nil, errDecorate(err, "YAMLParse")
	}
	return P, nil
}

// YAMLRead is YAMLParse on the contents of a file.
func YAMLRead(filename string) (*Params, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, CError{err.Error(), []string{"YAMLRead"}}
	}
	P, err := YAMLParse(data)
	if err != nil {
		return nil, errDecorate(err, "YAMLRead")
	}
	return P, nil
}

func yamlMapping(n *yaml.Node) (*Params, error) {
	P := NewParams()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			return nil, CError{fmt.Sprintf("line %d: parameter names must be scalars", key.Line), []string{"yamlMapping"}}
		}
		v, err := yamlValue(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		P.Set(key.Value, v)
	}
	return P, nil
}

func yamlValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		sub, err := yamlMapping(n)
		if err != nil {
			return Value{}, err
		}
		return Map(sub), nil
	case yaml.SequenceNode:
		elems := make([]Value, len(n.Content))
		for i, e := range n.Content {
			v, err := yamlValue(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Seq(elems...), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return Str(n.Value), nil
			}
			return Bool(b), nil
		case "!!int":
			i, err := strconv.Atoi(n.Value)
			if err != nil {
				return Str(n.Value), nil
			}
			return Int(i), nil
		case "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return Str(n.Value), nil
			}
			return Num(f), nil
		}
		return Str(n.Value), nil
	}
	return Value{}, CError{fmt.Sprintf("line %d: unsupported YAML node", n.Line), []string{"yamlValue"}}
}

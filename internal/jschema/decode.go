// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/schemagen/internal/errors"
)

// Encoding identifies the encoding of a schema file.
type Encoding int

// Supported schema encodings.
const (
	JSON Encoding = iota
	YAML
)

// EncodingFromPath determines the encoding from a file extension.
// Anything that is not .yaml or .yml is read as JSON.
func EncodingFromPath(path string) Encoding {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// decode parses schema text into literal values (see Object), keeping key
// order and the exact text of numbers.
func decode(data []byte, enc Encoding) (any, error) {
	if enc == YAML {
		return decodeYAML(data)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return readJSONValue(dec)
}

func readJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, errors.Newf("unexpected object key %v", keyTok)
				}
				value, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				value, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, errors.Newf("unexpected delimiter %q", rune(v))
	case json.Number:
		return parseNumber(string(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	case string, bool, nil:
		return v, nil
	}
	return nil, errors.Newf("unexpected token %v", tok)
}

func decodeYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return yamlNodeValue(&root)
}

func yamlNodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlNodeValue(n.Content[0])
	case yaml.AliasNode:
		return yamlNodeValue(n.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			value, err := yamlNodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(n.Content[i].Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			value, err := yamlNodeValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		case "!!int", "!!float":
			d, err := parseNumber(n.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: invalid number %q", n.Line, n.Value)
			}
			return d, nil
		default:
			return n.Value, nil
		}
	}
	return nil, errors.Newf("line %d: unsupported YAML node", n.Line)
}

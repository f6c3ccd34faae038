// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/dacolabs/schemagen/internal/model"
)

var staticPrefixes = map[model.StaticKind]string{
	model.StaticString:      "cg_str",
	model.StaticStringArray: "cg_array",
	model.StaticIntArray:    "cg_int_array",
	model.StaticPattern:     "cg_regex",
	model.StaticDecimal:     "cg_dec",
}

// StaticPool deduplicates the constants of one output unit. Structurally equal
// values of the same kind share one name.
type StaticPool struct {
	fields   []model.StaticField
	names    map[string]string
	counters map[model.StaticKind]int
}

// NewStaticPool creates an empty pool.
func NewStaticPool() *StaticPool {
	return &StaticPool{
		names:    make(map[string]string),
		counters: make(map[model.StaticKind]int),
	}
}

// Add returns the name of the constant holding value, declaring it on first use.
func (p *StaticPool) Add(kind model.StaticKind, value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	key := kind.String() + ":" + string(data)
	if name, ok := p.names[key]; ok {
		return name, nil
	}
	name := fmt.Sprintf("%s%d", staticPrefixes[kind], p.counters[kind])
	p.counters[kind]++
	p.names[key] = name
	p.fields = append(p.fields, model.StaticField{Name: name, Kind: kind, Value: value})
	return name, nil
}

// Fields returns the declared constants in declaration order.
func (p *StaticPool) Fields() []model.StaticField {
	return p.fields
}

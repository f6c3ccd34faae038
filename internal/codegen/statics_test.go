// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/model"
)

func TestStaticPool(t *testing.T) {
	pool := NewStaticPool()

	a, err := pool.Add(model.StaticPattern, "^[a-z]+$")
	require.NoError(t, err)
	b, err := pool.Add(model.StaticPattern, "^[a-z]+$")
	require.NoError(t, err)
	c, err := pool.Add(model.StaticPattern, "^[0-9]+$")
	require.NoError(t, err)

	assert.Equal(t, "cg_regex0", a)
	assert.Equal(t, a, b)
	assert.Equal(t, "cg_regex1", c)

	d1, _ := pool.Add(model.StaticDecimal, decimal.RequireFromString("1.50"))
	d2, _ := pool.Add(model.StaticDecimal, decimal.RequireFromString("1.5"))
	assert.Equal(t, "cg_dec0", d1)
	assert.Equal(t, d1, d2)

	s, _ := pool.Add(model.StaticString, "^[a-z]+$")
	assert.Equal(t, "cg_str0", s, "kinds are pooled separately")

	arr, _ := pool.Add(model.StaticStringArray, []string{"a b", "c"})
	arr2, _ := pool.Add(model.StaticStringArray, []string{"a b", "c"})
	assert.Equal(t, "cg_array0", arr)
	assert.Equal(t, arr, arr2)

	require.Len(t, pool.Fields(), 5)
	assert.Equal(t, model.StaticField{Name: "cg_regex0", Kind: model.StaticPattern, Value: "^[a-z]+$"}, pool.Fields()[0])
}

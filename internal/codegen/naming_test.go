// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNameFromSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"person.schema.json", "Person"},
		{"purchase-order.schema.json", "PurchaseOrder"},
		{"line_item-schema.yaml", "LineItem"},
		{"file:///schemas/shipping.address.yml", "ShippingAddress"},
		{"file:///schemas/customer.json#/properties/x", "Customer"},
		{"schemas/Order_schema.json", "Order"},
		{"3d-model.json", "C3dModel"},
		{"weird$name!.json", "Weirdname"},
		{"", ""},
		{"---.json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassNameFromSource(tt.source))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "UserName", ToPascalCase("user_name"))
	assert.Equal(t, "UserName", ToPascalCase("user-name"))
	assert.Equal(t, "ShippingAddress", ToPascalCase("shipping.address"))
	assert.Equal(t, "Simple", ToPascalCase("simple"))
	assert.Equal(t, "", ToPascalCase(""))
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		subDir string
		derive bool
		want   string
	}{
		{"no derive", "com.example", "orders/v1", false, "com.example"},
		{"derive", "com.example", "orders/v1", true, "com.example.orders.v1"},
		{"derive without base", "", "Orders", true, "orders"},
		{"root directory", "com.example", "", true, "com.example"},
		{"sanitized segment", "com.example", "my-types/2024", true, "com.example.mytypes._2024"},
		{"keyword segment", "com.example", "object", true, "com.example.object_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageName(tt.base, tt.subDir, tt.derive, Kotlin))
		})
	}
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "line", singular("lines"))
	assert.Equal(t, "data", singular("data"))
	assert.Equal(t, "s", singular("s"))
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("typescript")
	assert.NoError(t, err)
	assert.Equal(t, ".ts", p.FileSuffix)
	assert.True(t, p.IsKeyword("function"))

	_, err = ProfileByName("cobol")
	assert.Error(t, err)
	assert.Equal(t, []string{"kotlin", "java", "typescript"}, ProfileNames())
}

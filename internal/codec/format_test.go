// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"testing"

	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		ft     models.FieldType
		value  models.TypedValue
		want   string
		wantOK bool
	}{
		{name: "boolean has no text", ft: models.FieldBoolean, value: models.BoolValue(true), want: "", wantOK: false},
		{name: "list joined", ft: models.FieldMultiselect, value: models.ListValue([]string{"a", "b"}), want: "a, b", wantOK: true},
		{name: "json object pretty", ft: models.FieldJSON, value: models.JSONValue(map[string]any{"a": 1.0}), want: "{\n  \"a\": 1\n}", wantOK: true},
		{name: "json field array stays json", ft: models.FieldJSON, value: models.JSONValue([]any{"x", 2.0}), want: "[\n  \"x\",\n  2\n]", wantOK: true},
		{name: "json field string list stays json", ft: models.FieldJSON, value: models.ListValue([]string{"a", "b"}), want: "[\n  \"a\",\n  \"b\"\n]", wantOK: true},
		{name: "json array joined elsewhere", ft: models.FieldText, value: models.JSONValue([]any{"x", 2.0}), want: "x, 2", wantOK: true},
		{name: "number", ft: models.FieldNumber, value: models.NumberValue(12.5), want: "12.5", wantOK: true},
		{name: "integer number", ft: models.FieldNumber, value: models.NumberValue(3), want: "3", wantOK: true},
		{name: "raw number text", ft: models.FieldNumber, value: models.TextValue("12a"), want: "12a", wantOK: true},
		{name: "null", ft: models.FieldText, value: models.Null(), want: "", wantOK: true},
		{name: "text", ft: models.FieldTextarea, value: models.TextValue("hello"), want: "hello", wantOK: true},
		{name: "bool on text field", ft: models.FieldText, value: models.BoolValue(false), want: "false", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Format(tt.ft, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecked(t *testing.T) {
	assert.True(t, Checked(models.BoolValue(true)))
	assert.False(t, Checked(models.BoolValue(false)))
	assert.True(t, Checked(models.TextValue("true")))
	assert.False(t, Checked(models.TextValue("1")))
	assert.False(t, Checked(models.Null()))
}

func TestAssetReference(t *testing.T) {
	ref, ok := AssetReference(models.TextValue("/api/files/a.png"))
	require.True(t, ok)
	assert.Equal(t, "/api/files/a.png", ref)

	_, ok = AssetReference(models.BlobValue(models.Blob{FileName: "a.png"}))
	assert.False(t, ok)

	_, ok = AssetReference(models.TextValue(""))
	assert.False(t, ok)
}

func TestJSONField_PrettyRoundTrip(t *testing.T) {
	def := models.FieldDefinition{Key: "config", Label: "Config", Type: models.FieldJSON}
	objects := []map[string]any{
		{},
		{"name": "x"},
		{"n": 1.5, "ok": true, "nested": map[string]any{"list": []any{"a", 2.0, nil}}},
		{"empty": map[string]any{}, "arr": []any{}},
	}

	for _, obj := range objects {
		display, ok := Format(models.FieldJSON, models.JSONValue(obj))
		require.True(t, ok)

		parsed := ParseString(models.FieldJSON, display)
		require.NoError(t, Validate(def, parsed))

		raw, isJSON := Normalize(def, parsed).AsJSON()
		require.True(t, isJSON)
		assert.Equal(t, obj, raw)
	}
}

func TestJSONField_ArrayReSubmits(t *testing.T) {
	def := models.FieldDefinition{Key: "config", Label: "Config", Type: models.FieldJSON}
	stored := []models.TypedValue{
		models.JSONValue([]any{"a", 2.0}),
		models.ListValue([]string{"a", "b"}),
	}

	for _, v := range stored {
		display, ok := Format(models.FieldJSON, v)
		require.True(t, ok)

		parsed := ParseString(models.FieldJSON, display)
		require.NoError(t, Validate(def, parsed))
	}
}

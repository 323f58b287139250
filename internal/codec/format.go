// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// Format renders a stored value into the editable string for a field of
// type ft. It returns ok=false for boolean fields: they are shown as a
// checkbox state (see [Checked]), never as text. Structures of a json field
// are shown as indented JSON so the text parses again on submit.
func Format(ft models.FieldType, v models.TypedValue) (display string, ok bool) {
	if ft == models.FieldBoolean {
		return "", false
	}
	if ft == models.FieldJSON && (v.Kind() == models.KindList || v.Kind() == models.KindJSON) {
		return prettyJSON(v), true
	}

	switch v.Kind() {
	case models.KindNull:
		return "", true
	case models.KindList:
		list, _ := v.AsList()
		return strings.Join(list, ", "), true
	case models.KindJSON:
		raw, _ := v.AsJSON()
		if arr, isList := raw.([]any); isList {
			items := make([]string, 0, len(arr))
			for _, item := range arr {
				items = append(items, models.FromAny(item).String())
			}
			return strings.Join(items, ", "), true
		}
		if _, isObject := raw.(map[string]any); isObject {
			return prettyJSON(v), true
		}
		return v.String(), true
	default:
		return v.String(), true
	}
}

func prettyJSON(v models.TypedValue) string {
	pretty, err := json.MarshalIndent(v.Any(), "", "  ")
	if err != nil {
		return v.String()
	}
	return string(pretty)
}

// Checked returns the checkbox state a stored value represents.
func Checked(v models.TypedValue) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	if s, ok := v.AsText(); ok {
		return strings.EqualFold(strings.TrimSpace(s), "true")
	}
	return false
}

// AssetReference returns the previously uploaded asset an image field
// points at. Only string values are references; a fresh blob is not.
func AssetReference(v models.TypedValue) (string, bool) {
	s, ok := v.AsText()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

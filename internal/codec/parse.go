// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec maps a field's declared type to the way raw editor input is
// parsed into a typed value, the way a stored value is rendered back into
// an editor, and the submit-time check every value passes before it is
// transmitted.
//
// Parsing is lenient: an unparseable number is kept as the raw text so a
// user can type partial input. [Validate] is the strict gate and runs once,
// right before transport.
package codec

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// ParseString parses text typed into the editor of a field of type ft.
func ParseString(ft models.FieldType, raw string) models.TypedValue {
	switch ft {
	case models.FieldNumber:
		return parseNumber(raw)
	case models.FieldBoolean:
		checked, _ := strconv.ParseBool(strings.TrimSpace(raw))
		return ParseChecked(checked)
	case models.FieldMultiselect:
		return models.ListValue(SplitList(raw))
	default:
		// json text stays unparsed while editing; an image string is a
		// reference to an already uploaded asset.
		return models.TextValue(raw)
	}
}

// ParseChecked maps a checkbox state. Booleans have no unset state.
func ParseChecked(checked bool) models.TypedValue {
	return models.BoolValue(checked)
}

// ParseList accepts an already-typed list for a multiselect field.
func ParseList(list []string) models.TypedValue {
	return models.ListValue(list)
}

// ParseBlob accepts the single blob produced by a file picker for an image
// field. It replaces any existing reference.
func ParseBlob(blob models.Blob) models.TypedValue {
	return models.BlobValue(blob)
}

// Parse dispatches on the dynamic type of raw: string, bool, []string or
// [models.Blob]. Any other value is passed through [models.FromAny].
func Parse(ft models.FieldType, raw any) models.TypedValue {
	switch val := raw.(type) {
	case string:
		return ParseString(ft, val)
	case bool:
		if ft == models.FieldBoolean {
			return ParseChecked(val)
		}
		return models.BoolValue(val)
	case []string:
		return ParseList(val)
	case models.Blob:
		return ParseBlob(val)
	case *models.Blob:
		if val == nil {
			return models.Null()
		}
		return ParseBlob(*val)
	default:
		return models.FromAny(val)
	}
}

// SplitList splits a comma-separated string, trimming each segment and
// dropping empty ones. Duplicates are kept.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

func parseNumber(raw string) models.TypedValue {
	if raw == "" {
		return models.TextValue("")
	}
	f, ok := parseFloat(raw)
	if !ok {
		return models.TextValue(raw)
	}
	return models.NumberValue(f)
}

// parseFloat accepts surrounding whitespace and rejects NaN and infinities.
func parseFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

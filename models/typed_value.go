// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrBlobNotSerializable is returned when a binary value is JSON-encoded.
// Blobs only travel as multipart parts.
var ErrBlobNotSerializable = errors.New("blob values cannot be encoded as JSON")

// ValueKind tags the variant held by a [TypedValue].
type ValueKind int

const (
	KindNull ValueKind = iota
	KindText
	KindNumber
	KindBool
	KindList
	KindBlob
	KindJSON
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindBlob:
		return "blob"
	case KindJSON:
		return "json"
	default:
		return "null"
	}
}

// Blob is a binary value picked from a file, sent with its own content type.
type Blob struct {
	FileName    string
	ContentType string
	Data        []byte
}

// TypedValue is a single metadata value. The zero value is Null.
type TypedValue struct {
	kind   ValueKind
	text   string
	number float64
	flag   bool
	list   []string
	blobs  []Blob
	json   any
}

// Null returns the absent value.
func Null() TypedValue { return TypedValue{} }

// TextValue wraps a string.
func TextValue(s string) TypedValue { return TypedValue{kind: KindText, text: s} }

// NumberValue wraps a number.
func NumberValue(f float64) TypedValue { return TypedValue{kind: KindNumber, number: f} }

// BoolValue wraps a boolean.
func BoolValue(b bool) TypedValue { return TypedValue{kind: KindBool, flag: b} }

// ListValue wraps an ordered list of strings. The slice is copied.
func ListValue(list []string) TypedValue {
	return TypedValue{kind: KindList, list: append([]string{}, list...)}
}

// BlobValue wraps one or more binary blobs.
func BlobValue(blobs ...Blob) TypedValue {
	return TypedValue{kind: KindBlob, blobs: append([]Blob(nil), blobs...)}
}

// JSONValue wraps an arbitrary JSON-compatible structure as produced by
// encoding/json (map[string]any, []any, float64, string, bool, nil).
func JSONValue(v any) TypedValue {
	if v == nil {
		return Null()
	}
	return TypedValue{kind: KindJSON, json: v}
}

// FromAny infers the variant of a decoded JSON value: strings become text,
// numbers numbers, booleans booleans, arrays of strings lists and anything
// else a JSON structure.
func FromAny(v any) TypedValue {
	switch val := v.(type) {
	case nil:
		return Null()
	case TypedValue:
		return val
	case string:
		return TextValue(val)
	case float64:
		return NumberValue(val)
	case float32:
		return NumberValue(float64(val))
	case int:
		return NumberValue(float64(val))
	case int64:
		return NumberValue(float64(val))
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return TextValue(val.String())
		}
		return NumberValue(f)
	case bool:
		return BoolValue(val)
	case []string:
		return ListValue(val)
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return JSONValue(val)
			}
			list = append(list, s)
		}
		return ListValue(list)
	case Blob:
		return BlobValue(val)
	case []Blob:
		return BlobValue(val...)
	default:
		return JSONValue(val)
	}
}

// Kind returns the held variant.
func (v TypedValue) Kind() ValueKind { return v.kind }

// IsNull reports whether v holds no value.
func (v TypedValue) IsNull() bool { return v.kind == KindNull }

// AsText returns the string held by a text value.
func (v TypedValue) AsText() (string, bool) { return v.text, v.kind == KindText }

// AsNumber returns the number held by a number value.
func (v TypedValue) AsNumber() (float64, bool) { return v.number, v.kind == KindNumber }

// AsBool returns the boolean held by a bool value.
func (v TypedValue) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// AsList returns the strings held by a list value.
func (v TypedValue) AsList() ([]string, bool) { return v.list, v.kind == KindList }

// AsBlobs returns the blobs held by a blob value.
func (v TypedValue) AsBlobs() ([]Blob, bool) { return v.blobs, v.kind == KindBlob }

// AsJSON returns the structure held by a JSON value.
func (v TypedValue) AsJSON() (any, bool) { return v.json, v.kind == KindJSON }

// IsAbsent reports whether v counts as "not provided": null, the empty
// string or an empty list.
func (v TypedValue) IsAbsent() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return v.text == ""
	case KindList:
		return len(v.list) == 0
	case KindBlob:
		return len(v.blobs) == 0
	case KindJSON:
		if arr, ok := v.json.([]any); ok {
			return len(arr) == 0
		}
	}
	return false
}

// String coerces v to its plain string form.
func (v TypedValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return FormatNumber(v.number)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindList:
		return strings.Join(v.list, ",")
	case KindBlob:
		names := make([]string, 0, len(v.blobs))
		for _, b := range v.blobs {
			names = append(names, b.FileName)
		}
		return strings.Join(names, ",")
	case KindJSON:
		if s, ok := v.json.(string); ok {
			return s
		}
		data, err := json.Marshal(v.json)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// Any returns v as a plain Go value suitable for encoding/json.
func (v TypedValue) Any() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.number
	case KindBool:
		return v.flag
	case KindList:
		return append([]string{}, v.list...)
	case KindBlob:
		return v.blobs
	case KindJSON:
		return v.json
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler. Blobs cannot be encoded.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBlob:
		return nil, ErrBlobNotSerializable
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return json.Marshal(v.Any())
	}
}

// UnmarshalJSON implements json.Unmarshaler using the inference rules of
// [FromAny].
func (v *TypedValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// FormatNumber renders f the shortest way that parses back to the same
// number, without an exponent for ordinary magnitudes.
func FormatNumber(f float64) string {
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Metadata maps field keys to typed values.
type Metadata map[string]TypedValue

// Keys returns the map keys in lexical order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of m.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

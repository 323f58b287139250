// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package builder implements the free-form metadata editor: an ordered list
// of key/value rows kept in sync with one canonical JSON object string.
//
// Decoding is forgiving. Empty, malformed or non-object input resets the
// editor to a single empty row. Encoding skips blank keys and silently drops
// number rows whose value does not parse.
package builder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// ErrRowIndex is returned when an edit addresses a row that does not exist.
var ErrRowIndex = errors.New("row index out of range")

// Builder holds the rows of one editing session and the canonical JSON
// they encode to.
type Builder struct {
	rows  []models.MetadataRow
	value string
}

// New returns a builder loaded from canonical.
func New(canonical string) *Builder {
	b := &Builder{}
	b.Load(canonical)
	return b
}

// Load replaces every row with the decoding of canonical. It is called
// whenever the canonical value changes from outside the editor.
func (b *Builder) Load(canonical string) {
	b.rows = Decode(canonical)
	b.value = canonical
}

// Rows returns a copy of the current rows.
func (b *Builder) Rows() []models.MetadataRow {
	out := make([]models.MetadataRow, len(b.rows))
	copy(out, b.rows)
	return out
}

// Len returns the number of rows.
func (b *Builder) Len() int { return len(b.rows) }

// Value returns the canonical JSON of the current rows. An empty string
// means there is no metadata.
func (b *Builder) Value() string { return b.value }

// Add appends an empty text row.
func (b *Builder) Add() string {
	b.rows = append(b.rows, emptyRow())
	return b.sync()
}

// Remove deletes row i.
func (b *Builder) Remove(i int) (string, error) {
	if err := b.check(i); err != nil {
		return b.value, err
	}
	b.rows = append(b.rows[:i], b.rows[i+1:]...)
	return b.sync(), nil
}

// SetKey renames row i.
func (b *Builder) SetKey(i int, key string) (string, error) {
	if err := b.check(i); err != nil {
		return b.value, err
	}
	b.rows[i].Key = key
	return b.sync(), nil
}

// SetValue changes the raw value of row i.
func (b *Builder) SetValue(i int, value string) (string, error) {
	if err := b.check(i); err != nil {
		return b.value, err
	}
	b.rows[i].Value = value
	return b.sync(), nil
}

// SetType changes the value type of row i. Switching to boolean resets the
// value to "false".
func (b *Builder) SetType(i int, t models.RowType) (string, error) {
	if err := b.check(i); err != nil {
		return b.value, err
	}
	b.rows[i].ValueType = t
	if t == models.RowBoolean {
		b.rows[i].Value = "false"
	}
	return b.sync(), nil
}

func (b *Builder) sync() string {
	b.value = Encode(b.rows)
	return b.value
}

func (b *Builder) check(i int) error {
	if i < 0 || i >= len(b.rows) {
		return fmt.Errorf("%w: %d", ErrRowIndex, i)
	}
	return nil
}

func emptyRow() models.MetadataRow {
	return models.MetadataRow{ValueType: models.RowText}
}

// Decode maps a canonical JSON object to rows, in document order. Anything
// that is not a JSON object yields a single empty text row.
func Decode(canonical string) []models.MetadataRow {
	if strings.TrimSpace(canonical) == "" {
		return []models.MetadataRow{emptyRow()}
	}

	rows, err := decodeObject(canonical)
	if err != nil {
		return []models.MetadataRow{emptyRow()}
	}

	return rows
}

func decodeObject(canonical string) ([]models.MetadataRow, error) {
	dec := json.NewDecoder(strings.NewReader(canonical))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("not an object")
	}

	rows := make([]models.MetadataRow, 0)
	index := make(map[string]int)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, err
		}

		row := rowFromRaw(key, raw)
		if i, dup := index[key]; dup {
			rows[i] = row
			continue
		}
		index[key] = len(rows)
		rows = append(rows, row)
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}

	return rows, nil
}

func rowFromRaw(key string, raw json.RawMessage) models.MetadataRow {
	var v any
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	_ = d.Decode(&v)

	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return models.MetadataRow{Key: key, Value: val.String(), ValueType: models.RowNumber}
		}
		return models.MetadataRow{Key: key, Value: models.FormatNumber(f), ValueType: models.RowNumber}
	case bool:
		return models.MetadataRow{Key: key, Value: strconv.FormatBool(val), ValueType: models.RowBoolean}
	case string:
		return models.MetadataRow{Key: key, Value: val, ValueType: models.RowText}
	case nil:
		return models.MetadataRow{Key: key, Value: "", ValueType: models.RowText}
	default:
		// nested structures are edited as their compact JSON text
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return models.MetadataRow{Key: key, Value: string(raw), ValueType: models.RowText}
		}
		return models.MetadataRow{Key: key, Value: buf.String(), ValueType: models.RowText}
	}
}

// Encode renders rows as a canonical JSON object in row order. Rows with a
// blank key are skipped, as are number rows that do not parse. When no key
// remains the result is the empty string. A repeated key keeps its first
// position and its last value.
func Encode(rows []models.MetadataRow) string {
	keys := make([]string, 0, len(rows))
	values := make(map[string]json.RawMessage, len(rows))

	for _, row := range rows {
		key := strings.TrimSpace(row.Key)
		if key == "" {
			continue
		}

		raw, ok := encodeValue(row)
		if !ok {
			continue
		}

		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = raw
	}

	if len(keys) == 0 {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(values[key])
	}
	buf.WriteByte('}')

	return buf.String()
}

func encodeValue(row models.MetadataRow) (json.RawMessage, bool) {
	switch row.ValueType {
	case models.RowNumber:
		f, ok := parseNumber(row.Value)
		if !ok {
			return nil, false
		}
		data, err := json.Marshal(f)
		if err != nil {
			return nil, false
		}
		return data, true
	case models.RowBoolean:
		if row.Value == "true" {
			return json.RawMessage("true"), true
		}
		return json.RawMessage("false"), true
	default:
		data, _ := json.Marshal(row.Value)
		return data, true
	}
}

func parseNumber(raw string) (float64, bool) {
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

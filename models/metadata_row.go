// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RowType is the value type of a free-form metadata row.
type RowType string

const (
	RowText    RowType = "text"
	RowNumber  RowType = "number"
	RowBoolean RowType = "boolean"
)

// RowTypes lists row types in the order the builder cycles through them.
var RowTypes = []RowType{RowText, RowNumber, RowBoolean}

// MetadataRow is an editable projection of one key of a JSON object. It is
// never persisted directly.
type MetadataRow struct {
	Key       string
	Value     string
	ValueType RowType
}

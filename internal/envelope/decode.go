// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/codec"
	"github.com/MKhiriev/go-schema-keeper/models"
)

// DecodeForm reconstructs an entity draft from a received multipart form.
// Declared fields are decoded by their type; undeclared keys keep their
// text unless it is a JSON structure. Repeated text parts of one key
// become a list.
func DecodeForm(form *multipart.Form, defs []models.FieldDefinition) (models.EntityDraft, error) {
	draft := models.EntityDraft{Metadata: models.Metadata{}}
	if form == nil {
		return draft, nil
	}

	draft.TypeID = first(form.Value[FieldTypeID])
	draft.Name = first(form.Value[FieldName])

	byKey := make(map[string]models.FieldDefinition, len(defs))
	for _, def := range defs {
		byKey[def.Key] = def
	}

	for name, values := range form.Value {
		key, ok := MetadataKey(name)
		if !ok || len(values) == 0 {
			continue
		}
		def, declared := byKey[key]
		if !declared {
			draft.Metadata[key] = decodeUndeclared(values)
			continue
		}
		draft.Metadata[key] = decodeDeclared(def.Type, values)
	}

	for name, headers := range form.File {
		key, ok := MetadataKey(name)
		if !ok || len(headers) == 0 {
			continue
		}
		blobs := make([]models.Blob, 0, len(headers))
		for _, h := range headers {
			blob, err := readBlob(h)
			if err != nil {
				return models.EntityDraft{}, fmt.Errorf("read part %q: %w", name, err)
			}
			blobs = append(blobs, blob)
		}
		draft.Metadata[key] = models.BlobValue(blobs...)
	}

	return draft, nil
}

func decodeDeclared(ft models.FieldType, values []string) models.TypedValue {
	raw := values[0]

	switch ft {
	case models.FieldBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return models.TextValue(raw)
		}
		return models.BoolValue(b)
	case models.FieldMultiselect:
		if len(values) > 1 {
			return models.ListValue(values)
		}
		var list []string
		if strings.HasPrefix(strings.TrimSpace(raw), "[") && json.Unmarshal([]byte(raw), &list) == nil {
			return models.ListValue(list)
		}
		return models.ListValue(codec.SplitList(raw))
	case models.FieldJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return models.TextValue(raw)
		}
		return models.JSONValue(v)
	default:
		return codec.ParseString(ft, raw)
	}
}

func decodeUndeclared(values []string) models.TypedValue {
	if len(values) > 1 {
		return models.ListValue(values)
	}

	raw := values[0]
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return models.FromAny(v)
		}
	}

	return models.TextValue(raw)
}

func readBlob(h *multipart.FileHeader) (models.Blob, error) {
	f, err := h.Open()
	if err != nil {
		return models.Blob{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Blob{}, err
	}

	return models.Blob{
		FileName:    h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

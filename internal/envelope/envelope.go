// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope flattens a typed metadata map into the multipart
// transport envelope sent to the data store, and reconstructs typed maps on
// the read side.
//
// Every metadata value travels under a namespaced part name
// ("metadata.<key>"). Blobs keep their own content type, repeated parts
// denote a list of blobs, structures are JSON-encoded and primitives are
// sent as their string form. Null and empty-string values are not sent at
// all.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// Namespace prefixes every metadata part name.
const Namespace = "metadata"

const (
	// FieldTypeID is the part carrying the owning entity type id.
	FieldTypeID = "type_id"

	// FieldName is the part carrying the entity name.
	FieldName = "name"
)

// ErrLooseMetadataNotObject is returned when loose metadata text is valid
// JSON but not an object.
var ErrLooseMetadataNotObject = errors.New("metadata must be a JSON object")

// Key returns the namespaced part name for a metadata key.
func Key(key string) string {
	return Namespace + "." + key
}

// MetadataKey strips the namespace from a part name. ok is false for parts
// outside the namespace.
func MetadataKey(part string) (key string, ok bool) {
	key, ok = strings.CutPrefix(part, Namespace+".")
	return key, ok && key != ""
}

// Part is one entry of the envelope: either text or a blob.
type Part struct {
	Name string
	Text string
	Blob *models.Blob
}

// IsBlob reports whether p carries binary content.
func (p Part) IsBlob() bool {
	return p.Blob != nil
}

// Envelope is the ordered list of parts of one request.
type Envelope struct {
	Parts []Part
}

// AddText appends a text part.
func (e *Envelope) AddText(name, text string) {
	e.Parts = append(e.Parts, Part{Name: name, Text: text})
}

// AddBlob appends a binary part.
func (e *Envelope) AddBlob(name string, blob models.Blob) {
	b := blob
	e.Parts = append(e.Parts, Part{Name: name, Blob: &b})
}

// Texts returns the text parts grouped by name, preserving order.
func (e Envelope) Texts() map[string][]string {
	out := make(map[string][]string)
	for _, p := range e.Parts {
		if !p.IsBlob() {
			out[p.Name] = append(out[p.Name], p.Text)
		}
	}
	return out
}

// Blobs returns the binary parts in order.
func (e Envelope) Blobs() []Part {
	out := make([]Part, 0)
	for _, p := range e.Parts {
		if p.IsBlob() {
			out = append(out, p)
		}
	}
	return out
}

// Lookup returns every part registered under name.
func (e Envelope) Lookup(name string) []Part {
	var out []Part
	for _, p := range e.Parts {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// MetadataParts returns only the namespaced metadata parts.
func (e Envelope) MetadataParts() []Part {
	var out []Part
	for _, p := range e.Parts {
		if _, ok := MetadataKey(p.Name); ok {
			out = append(out, p)
		}
	}
	return out
}

// Encode flattens metadata into an envelope. Keys listed in order are
// encoded first, in that order; the remaining keys follow in lexical order.
func Encode(metadata models.Metadata, order ...string) (Envelope, error) {
	var env Envelope

	seen := make(map[string]bool, len(metadata))
	keys := make([]string, 0, len(metadata))
	for _, k := range order {
		if _, ok := metadata[k]; ok && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, k := range metadata.Keys() {
		if !seen[k] {
			keys = append(keys, k)
		}
	}

	for _, k := range keys {
		if err := env.appendValue(k, metadata[k]); err != nil {
			return Envelope{}, err
		}
	}

	return env, nil
}

// EncodeEntity builds the full entity envelope: type id, name and the
// metadata parts.
func EncodeEntity(typeID, name string, metadata models.Metadata, order ...string) (Envelope, error) {
	meta, err := Encode(metadata, order...)
	if err != nil {
		return Envelope{}, err
	}

	var env Envelope
	env.AddText(FieldTypeID, typeID)
	env.AddText(FieldName, name)
	env.Parts = append(env.Parts, meta.Parts...)

	return env, nil
}

func (e *Envelope) appendValue(key string, v models.TypedValue) error {
	name := Key(key)

	switch v.Kind() {
	case models.KindNull:
		return nil
	case models.KindText:
		s, _ := v.AsText()
		if s == "" {
			return nil
		}
		e.AddText(name, s)
	case models.KindBlob:
		blobs, _ := v.AsBlobs()
		for _, b := range blobs {
			e.AddBlob(name, b)
		}
	case models.KindList, models.KindJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode metadata %q: %w", key, err)
		}
		e.AddText(name, string(data))
	default:
		e.AddText(name, v.String())
	}

	return nil
}

// DecodeLoose parses loose metadata supplied as a single JSON text. Empty
// or whitespace-only text is a valid "no extra metadata" state and decodes
// to an empty map.
func DecodeLoose(text string) (models.Metadata, error) {
	if strings.TrimSpace(text) == "" {
		return models.Metadata{}, nil
	}

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("metadata is not valid JSON: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrLooseMetadataNotObject
	}

	out := make(models.Metadata, len(obj))
	for k, v := range obj {
		out[k] = models.FromAny(v)
	}

	return out, nil
}

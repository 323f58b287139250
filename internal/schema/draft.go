// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// ErrFieldIndex is returned when a row index is outside the field list.
var ErrFieldIndex = errors.New("field index out of range")

// Draft is the editable state of one entity type during an edit session.
// Rows are addressed by position; Build serializes them in display order.
type Draft struct {
	id          string
	name        string
	slug        string
	description string
	fields      []models.FieldDefinition

	creating      bool
	slugDiverged  bool
	defaultLocked bool
}

// NewDraft starts a session for a brand-new custom type.
func NewDraft() *Draft {
	return &Draft{creating: true}
}

// EditDraft starts a session over an existing type. Default types keep
// their reserved name and slug.
func EditDraft(t models.EntityType) *Draft {
	d := &Draft{
		id:            t.ID,
		name:          t.Name,
		slug:          t.Slug,
		description:   t.Description,
		fields:        slices.Clone(t.Fields),
		creating:      !t.Materialized(),
		defaultLocked: models.IsDefaultSlug(t.Slug),
	}
	// a placeholder of a default type already has its slug chosen
	d.slugDiverged = d.slug != "" && d.slug != Slugify(d.name)
	return d
}

// Name returns the type display name.
func (d *Draft) Name() string { return d.name }

// Slug returns the current slug.
func (d *Draft) Slug() string { return d.slug }

// Description returns the type description.
func (d *Draft) Description() string { return d.description }

// Creating reports whether the session creates a new type.
func (d *Draft) Creating() bool { return d.creating }

// Locked reports whether name and slug are immutable.
func (d *Draft) Locked() bool { return d.defaultLocked }

// SetName updates the display name. While creating, and as long as the
// slug was not edited by hand, the slug follows the name.
func (d *Draft) SetName(name string) {
	if d.defaultLocked {
		return
	}
	d.name = name
	if d.creating && !d.slugDiverged {
		d.slug = Slugify(name)
	}
}

// SetSlug sets the slug explicitly and stops auto-derivation.
func (d *Draft) SetSlug(slug string) {
	if d.defaultLocked {
		return
	}
	d.slug = slug
	d.slugDiverged = true
}

// SetDescription updates the type description.
func (d *Draft) SetDescription(description string) {
	d.description = description
}

// Len returns the number of field rows.
func (d *Draft) Len() int { return len(d.fields) }

// Fields returns a copy of the field rows.
func (d *Draft) Fields() []models.FieldDefinition {
	return slices.Clone(d.fields)
}

// Field returns the row at i.
func (d *Draft) Field(i int) (models.FieldDefinition, error) {
	if err := d.check(i); err != nil {
		return models.FieldDefinition{}, err
	}
	return d.fields[i], nil
}

// AddField appends a new text row and returns its index.
func (d *Draft) AddField() int {
	d.fields = append(d.fields, models.FieldDefinition{Type: models.FieldText})
	return len(d.fields) - 1
}

// SetField replaces the row at i.
func (d *Draft) SetField(i int, def models.FieldDefinition) error {
	if err := d.check(i); err != nil {
		return err
	}
	d.fields[i] = def
	return nil
}

// RemoveField deletes the row at i.
func (d *Draft) RemoveField(i int) error {
	if err := d.check(i); err != nil {
		return err
	}
	d.fields = slices.Delete(d.fields, i, i+1)
	return nil
}

// MoveField moves the row at from to position to, shifting the rows in
// between.
func (d *Draft) MoveField(from, to int) error {
	if err := d.check(from); err != nil {
		return err
	}
	if err := d.check(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	def := d.fields[from]
	d.fields = slices.Delete(d.fields, from, from+1)
	d.fields = slices.Insert(d.fields, to, def)
	return nil
}

// CycleType advances the type of row i through the field type enumeration.
func (d *Draft) CycleType(i int) error {
	if err := d.check(i); err != nil {
		return err
	}
	idx := slices.Index(models.FieldTypes, d.fields[i].Type)
	d.fields[i].Type = models.FieldTypes[(idx+1)%len(models.FieldTypes)]
	if !d.fields[i].Type.HasOptions() {
		d.fields[i].Options = nil
	}
	return nil
}

// Build serializes the session into an entity type in display order.
func (d *Draft) Build() models.EntityType {
	fields := slices.Clone(d.fields)
	if fields == nil {
		fields = []models.FieldDefinition{}
	}
	return models.EntityType{
		ID:          d.id,
		Name:        d.name,
		Slug:        d.slug,
		Description: d.description,
		Fields:      fields,
	}
}

func (d *Draft) check(i int) error {
	if i < 0 || i >= len(d.fields) {
		return fmt.Errorf("%w: %d", ErrFieldIndex, i)
	}
	return nil
}

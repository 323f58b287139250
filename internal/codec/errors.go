// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldRequired is returned when a required field is absent.
	ErrFieldRequired = errors.New("is required")

	// ErrInvalidNumber is returned when a number field does not hold a
	// finite number.
	ErrInvalidNumber = errors.New("must be a valid number")

	// ErrInvalidJSON is returned when a json field's text does not parse.
	ErrInvalidJSON = errors.New("must be valid JSON")
)

// FieldError reports a submit-time validation failure of a single field.
// The message always carries the field's label.
type FieldError struct {
	Key   string
	Label string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Label, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

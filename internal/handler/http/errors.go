// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the handlers themselves before a request reaches
// the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when an entity type body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipartForm is returned when an entity request body cannot
	// be parsed as multipart/form-data.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")
)

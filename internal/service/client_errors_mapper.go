// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/adapter"
	"github.com/MKhiriev/go-schema-keeper/internal/app"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
)

// businessError is a sentinel the data store reports under a given transport
// error, identified by the exact text of the response body.
type businessError struct {
	transport error
	message   string
	target    error
}

var restorableErrors = []businessError{
	{adapter.ErrBadRequest, app.MsgInvalidDataProvided, ErrInvalidDataProvided},
	{adapter.ErrNotFound, store.ErrEntityTypeNotFound.Error(), store.ErrEntityTypeNotFound},
	{adapter.ErrNotFound, store.ErrEntityNotFound.Error(), store.ErrEntityNotFound},
	{adapter.ErrNotFound, store.ErrBlobNotFound.Error(), store.ErrBlobNotFound},
	{adapter.ErrConflict, store.ErrSlugAlreadyExists.Error(), store.ErrSlugAlreadyExists},
}

// mapAdapterError restores the business sentinel behind a transport error.
// Errors that match nothing are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := responseBody(err)
	for _, be := range restorableErrors {
		if errors.Is(err, be.transport) && msg == be.message {
			return be.target
		}
	}

	return err
}

// responseBody returns the text after the first ": " of a transport error,
// which is where the adapter puts the response body.
func responseBody(err error) string {
	msg := err.Error()
	if _, body, ok := strings.Cut(msg, ": "); ok {
		return body
	}
	return msg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// schema keeper data store handlers and the client services that read
// their responses.
//
// All Msg* constants are message strings written into the "error" field of
// HTTP response bodies. The client matches on them to restore business
// errors, so the wording is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. an empty type slug).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidMultipartForm is returned when an entity request is not a
	// readable multipart/form-data body.
	MsgInvalidMultipartForm = "invalid multipart form"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

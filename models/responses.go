// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListResponse is the enveloped listing shape returned by the data store:
// {"data": [...]}. Clients must also accept a bare JSON array.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It checks the remote data store and hands control to the terminal UI,
// which edits entity types and their records through the client services.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema holds the editing state of one entity type schema: slug
// derivation and the ordered field list being edited.
package schema

import (
	"regexp"
	"strings"
)

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a display name: lowercased and
// trimmed, characters other than ASCII letters, digits, whitespace and
// hyphen removed, whitespace runs replaced by one hyphen and hyphen runs
// collapsed.
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugDashes.ReplaceAllString(s, "-")
}

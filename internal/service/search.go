// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Filter returns the records whose service, account or notes contain query,
// ignoring case. An empty query matches everything. The input order is
// kept.
func Filter(records []models.Credential, query string) []models.Credential {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Credential, 0, len(records))
	for _, c := range records {
		if query == "" ||
			strings.Contains(strings.ToLower(c.Service), query) ||
			strings.Contains(strings.ToLower(c.Account), query) ||
			strings.Contains(strings.ToLower(c.Notes), query) {
			matched = append(matched, c)
		}
	}
	return matched
}

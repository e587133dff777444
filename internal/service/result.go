// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-pass-vault/models"

// Op names the operation a [Result] reports on.
type Op string

const (
	OpAdd    Op = "add"
	OpDelete Op = "delete"
)

// Result is the completion notice of an Add or Delete. It is delivered once
// the published list reflects the outcome.
type Result struct {
	Op Op

	// Record is the credential that was written, or the one that was
	// targeted by a delete. Zero for a delete miss.
	Record models.Credential

	// Applied reports whether the published list changed.
	Applied bool

	// Err is the backend or lifecycle failure, if any. The published list
	// is left untouched when Err is set.
	Err error
}

// deliver sends res on a fresh single-use channel.
func deliver(res Result) <-chan Result {
	out := make(chan Result, 1)
	out <- res
	close(out)
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// redacted replaces the secret in every diagnostic rendering of a Credential.
const redacted = "[REDACTED]"

// Credential is a single vault entry: a secret stored for an account at a
// service. The (Service, Account) pair is the business key; at most one
// Credential per exact pair exists in a vault.
//
// Callers must supply a non-empty Service, Account and Secret. The store
// does not re-validate them.
type Credential struct {
	// ID is an opaque identifier minted when the value is constructed.
	// It is the only handle accepted by delete operations.
	ID string `json:"id"`

	// Service is the site or application name.
	Service string `json:"service"`

	// Account is the user name or e-mail at Service.
	Account string `json:"account"`

	// Secret is the sensitive payload. It is never serialized to JSON and
	// never printed.
	Secret string `json:"-"`

	// Notes is an optional free-text annotation.
	Notes string `json:"notes,omitempty"`

	// LastModified is set when the value is constructed.
	LastModified time.Time `json:"last_modified"`
}

// Key returns the business key of the credential.
func (c Credential) Key() BusinessKey {
	return BusinessKey{Service: c.Service, Account: c.Account}
}

// SameKey reports whether c and other share a business key. Comparison is
// exact: case-sensitive and without normalization.
func (c Credential) SameKey(other Credential) bool {
	return c.Service == other.Service && c.Account == other.Account
}

// String implements fmt.Stringer with the secret redacted.
func (c Credential) String() string {
	return fmt.Sprintf("Credential(id: %s, service: %q, account: %q, secret: %s, notes: %q, last_modified: %s)",
		c.ID, c.Service, c.Account, redacted, c.Notes, c.LastModified.Format(time.RFC3339))
}

// GoString implements fmt.GoStringer so that %#v does not leak the secret.
func (c Credential) GoString() string {
	return c.String()
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler. Nothing
// derived from the secret is written.
func (c Credential) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", c.ID).
		Str("service", c.Service).
		Str("account", c.Account).
		Time("last_modified", c.LastModified)
}

// BusinessKey identifies a credential for upsert purposes.
type BusinessKey struct {
	Service string
	Account string
}

// String renders the key as service/account.
func (k BusinessKey) String() string {
	return k.Service + "/" + k.Account
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the vault packages.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator mints opaque record identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator produces time-ordered UUIDv7 strings, falling back to a
// random UUIDv4 if the v7 clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// KeyID derives a name-based UUIDv5 from the namespace and business key.
// Persisted items that carry no stored ID get this one, so the same item
// has the same ID in every process and on every reload.
func KeyID(namespace, service, account string) string {
	name := strings.Join([]string{namespace, service, account}, "\x00")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

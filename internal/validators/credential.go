// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the opaque record identifier used by delete.
	FieldID = "id"

	// FieldService targets the site or application name.
	FieldService = "service"

	// FieldAccount targets the user name at the service.
	FieldAccount = "account"

	// FieldSecret targets the password itself.
	FieldSecret = "secret"

	// FieldNotes targets the free-text annotation.
	FieldNotes = "notes"
)

// MaxFieldLength bounds every text field in runes. OS secure stores reject
// much larger attributes with opaque errors.
const MaxFieldLength = 1024

// CredentialValidator validates models.Credential values built from user
// input. Service and account must be non-blank single-line strings, the
// secret must be non-empty. Notes are optional.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator and returns it
// as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields the
// service, account, secret and notes fields are checked; the ID is only
// checked when asked for, since new records get theirs from the store.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredential(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldAccount, FieldSecret, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrEmptyID
			}
		case FieldService:
			if err := checkLine(c.Service, ErrEmptyService); err != nil {
				return fmt.Errorf("%s: %w", FieldService, err)
			}
		case FieldAccount:
			if err := checkLine(c.Account, ErrEmptyAccount); err != nil {
				return fmt.Errorf("%s: %w", FieldAccount, err)
			}
		case FieldSecret:
			if c.Secret == "" {
				return ErrEmptySecret
			}
			if utf8.RuneCountInString(c.Secret) > MaxFieldLength {
				return fmt.Errorf("%s: %w", FieldSecret, ErrValueTooLong)
			}
		case FieldNotes:
			if utf8.RuneCountInString(c.Notes) > MaxFieldLength {
				return fmt.Errorf("%s: %w", FieldNotes, ErrValueTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkLine rejects blank values, control characters and oversized input.
// Surrounding whitespace is the caller's to trim; it is not an error here.
func checkLine(s string, errEmpty error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > MaxFieldLength {
		return ErrValueTooLong
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return ErrControlChars
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCredential() models.Credential {
	return models.Credential{
		ID:      "0192f3c4-0000-7000-8000-000000000000",
		Service: "github.com",
		Account: "dev@example.com",
		Secret:  "P@ss1234",
		Notes:   "work",
	}
}

// ---------------------------------------------------------------------------
// TestNewCredentialValidator
// ---------------------------------------------------------------------------

func TestNewCredentialValidator(t *testing.T) {
	v := NewCredentialValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()
	c := validCredential()

	assert.NoError(t, v.Validate(ctx, c))
	assert.NoError(t, v.Validate(ctx, &c))
	assert.ErrorIs(t, v.Validate(ctx, (*models.Credential)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "github.com"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, c, "password_history"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_Credential
// ---------------------------------------------------------------------------

func TestValidate_Credential(t *testing.T) {
	long := strings.Repeat("x", MaxFieldLength+1)

	tests := []struct {
		name    string
		mutate  func(c *models.Credential)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Credential) {}},
		{name: "empty notes allowed", mutate: func(c *models.Credential) { c.Notes = "" }},
		{name: "id not checked by default", mutate: func(c *models.Credential) { c.ID = "" }},
		{name: "empty service", mutate: func(c *models.Credential) { c.Service = "" }, wantErr: ErrEmptyService},
		{name: "blank service", mutate: func(c *models.Credential) { c.Service = " \t" }, wantErr: ErrEmptyService},
		{name: "newline in service", mutate: func(c *models.Credential) { c.Service = "git\nhub" }, wantErr: ErrControlChars},
		{name: "long service", mutate: func(c *models.Credential) { c.Service = long }, wantErr: ErrValueTooLong},
		{name: "empty account", mutate: func(c *models.Credential) { c.Account = "" }, wantErr: ErrEmptyAccount},
		{name: "control char in account", mutate: func(c *models.Credential) { c.Account = "me\x00" }, wantErr: ErrControlChars},
		{name: "empty secret", mutate: func(c *models.Credential) { c.Secret = "" }, wantErr: ErrEmptySecret},
		{name: "whitespace secret allowed", mutate: func(c *models.Credential) { c.Secret = "   " }},
		{name: "long secret", mutate: func(c *models.Credential) { c.Secret = long }, wantErr: ErrValueTooLong},
		{name: "long notes", mutate: func(c *models.Credential) { c.Notes = long }, wantErr: ErrValueTooLong},
		{name: "unicode service", mutate: func(c *models.Credential) { c.Service = "почта.рф" }},
		{name: "empty id when asked", mutate: func(c *models.Credential) { c.ID = "" }, fields: []string{FieldID}, wantErr: ErrEmptyID},
		{name: "scoped to id ignores secret", mutate: func(c *models.Credential) { c.Secret = "" }, fields: []string{FieldID}},
	}

	v := NewCredentialValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredential()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyService = errors.New("service is required")
	ErrEmptyAccount = errors.New("account is required")
	ErrEmptySecret  = errors.New("password is required")
	ErrEmptyID      = errors.New("id is required")
	ErrControlChars = errors.New("control characters are not allowed")
	ErrValueTooLong = errors.New("value is too long")
)

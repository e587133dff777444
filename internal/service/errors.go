// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrStoreClosed is reported for operations issued after Close.
	ErrStoreClosed = errors.New("credential store is closed")

	// ErrInitialLoad wraps the backend failure that prevented
	// NewCredentialStore from loading the vault.
	ErrInitialLoad = errors.New("initial load failed")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !darwin

package store

import "fmt"

func newKeychainBackend(string) (Backend, error) {
	return nil, fmt.Errorf("%w: keychain", ErrUnsupportedDriver)
}

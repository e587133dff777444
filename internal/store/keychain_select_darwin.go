// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build darwin

package store

func newKeychainBackend(namespace string) (Backend, error) {
	return NewKeychainBackend(namespace), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires the terminal UI and the background workers (periodic store
// refresh) into a single process lifecycle.
package client

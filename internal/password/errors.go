// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import "errors"

// ErrEntropy is returned when the random source cannot be read.
var ErrEntropy = errors.New("failed to read random source")

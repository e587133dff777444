// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrQueueClosed is returned by [Queue.Submit] after [Queue.Stop] was called.
var ErrQueueClosed = errors.New("queue is closed")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard puts copied secrets on the system clipboard and takes
// them off again.
package clipboard

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
)

// Clipboard is a read/write text clipboard.
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// System is the OS clipboard (pbcopy, xclip/xsel/wl-clipboard, or the
// Windows API).
type System struct{}

func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

func (System) ReadAll() (string, error) { return clipboard.ReadAll() }

// Supported reports whether a system clipboard utility is available.
func Supported() bool {
	return !clipboard.Unsupported
}

// ClearIfUnchanged empties cb only when it still holds value, so something
// the user copied elsewhere in the meantime survives.
func ClearIfUnchanged(cb Clipboard, value string) error {
	current, err := cb.ReadAll()
	if err != nil {
		return err
	}
	if current != value {
		return nil
	}
	return cb.WriteAll("")
}

// ClearAfter blocks for d, then calls ClearIfUnchanged. If ctx ends first
// the clipboard is cleared immediately. It returns whether the value was
// still present.
func ClearAfter(ctx context.Context, cb Clipboard, value string, d time.Duration) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	current, err := cb.ReadAll()
	if err != nil {
		return false, err
	}
	if current != value {
		return false, nil
	}
	return true, cb.WriteAll("")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memClipboard struct {
	value   string
	readErr error
}

func (m *memClipboard) WriteAll(text string) error { m.value = text; return nil }

func (m *memClipboard) ReadAll() (string, error) { return m.value, m.readErr }

func TestClearIfUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		current string
		value   string
		want    string
	}{
		{name: "still ours", current: "s3cret", value: "s3cret", want: ""},
		{name: "replaced by user", current: "other", value: "s3cret", want: "other"},
		{name: "already empty", current: "", value: "s3cret", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &memClipboard{value: tt.current}

			require.NoError(t, ClearIfUnchanged(cb, tt.value))
			assert.Equal(t, tt.want, cb.value)
		})
	}
}

func TestClearIfUnchanged_ReadError(t *testing.T) {
	readErr := errors.New("no clipboard utility")
	cb := &memClipboard{value: "s3cret", readErr: readErr}

	assert.ErrorIs(t, ClearIfUnchanged(cb, "s3cret"), readErr)
	assert.Equal(t, "s3cret", cb.value)
}

func TestClearAfter_Timer(t *testing.T) {
	cb := &memClipboard{value: "s3cret"}

	cleared, err := ClearAfter(context.Background(), cb, "s3cret", 5*time.Millisecond)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, cb.value)
}

func TestClearAfter_ContextCancelledClearsEarly(t *testing.T) {
	cb := &memClipboard{value: "s3cret"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	cleared, err := ClearAfter(ctx, cb, "s3cret", time.Hour)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Less(t, time.Since(start), time.Minute)
	assert.Empty(t, cb.value)
}

func TestClearAfter_KeepsForeignValue(t *testing.T) {
	cb := &memClipboard{value: "other"}

	cleared, err := ClearAfter(context.Background(), cb, "s3cret", time.Millisecond)

	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Equal(t, "other", cb.value)
}

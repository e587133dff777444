// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Fields(t *testing.T) {
	info := NewAppBuildInfo(" v1.0.0 ", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, []BuildField{
		{Name: "version", Value: "v1.0.0"},
		{Name: "date", Value: NotAvailable},
		{Name: "commit", Value: "abc123"},
	}, info.Fields())
}

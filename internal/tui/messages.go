// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type listUpdatedMsg struct {
	items []models.Credential
}

type listClosedMsg struct{}

type addDoneMsg struct {
	res service.Result
}

type deleteDoneMsg struct {
	res service.Result
}

type refreshDoneMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}

type clearClipboardMsg struct {
	value string
}

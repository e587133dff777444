// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pass-vault/models"

type confirmModel struct {
	target models.Credential
	back   screen
}

func (m confirmModel) View() string {
	content := "Delete " + m.target.Account + " @ " + m.target.Service + "?\n\n"
	content += "y yes    n no"
	return appStyle.Render(overlayBoxStyle.Render(content))
}

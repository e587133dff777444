// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (m appModel) viewDetail(item models.Credential) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Service   : %s\n", item.Service))
	b.WriteString(fmt.Sprintf("Account   : %s\n", item.Account))
	b.WriteString(fmt.Sprintf("Password  : %s\n", maskSecret(item.Secret, m.reveal)))
	if m.reveal {
		b.WriteString(fmt.Sprintf("Strength  : %s\n", renderStrength(item.Secret, item.Service, item.Account)))
	}
	b.WriteString(fmt.Sprintf("Notes     : %s\n", valueOrDash(item.Notes)))
	b.WriteString(fmt.Sprintf("Modified  : %s\n", item.LastModified.Local().Format("2006-01-02 15:04:05")))
	b.WriteString(m.viewFooter())

	revealHint := "space: show"
	if m.reveal {
		revealHint = "space: hide"
	}
	return renderPage(strings.ToUpper(item.Service), strings.TrimRight(b.String(), "\n"),
		revealHint+" │ c: copy password │ u: copy account │ e: edit │ d: delete │ esc: back")
}

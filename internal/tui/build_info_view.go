// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-pass-vault")
	for _, f := range info.Fields() {
		fmt.Fprintf(&b, "\n%-12s %s", strings.ToUpper(f.Name[:1])+f.Name[1:]+":", f.Value)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

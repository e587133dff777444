// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-vault/internal/password"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

var strengthStyles = map[string]lipgloss.Style{
	password.LabelWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	password.LabelFair:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	password.LabelGood:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	password.LabelStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

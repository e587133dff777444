// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/password"
)

const meterWidth = 20

// renderStrength draws the deterministic score as a coloured bar followed
// by the zxcvbn crack time estimate.
func renderStrength(secret string, userInputs ...string) string {
	if secret == "" {
		return helpStyle.Render(strings.Repeat("░", meterWidth) + " -")
	}

	score := password.Score(secret)
	label := password.Label(score)
	filled := int(score * meterWidth)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
	est := password.EstimateStrength(secret, userInputs...)

	return fmt.Sprintf("%s %s (%.0f%%)  crack time: %s",
		strengthStyles[label].Render(bar), strengthStyles[label].Render(label), score*100, est.CrackTime)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"strings"
	"unicode/utf8"
)

// ScoringSpecials is the punctuation set recognized by Score.
const ScoringSpecials = "!@#$%^&*()_+-={}[]|:;\"'<>,.?~`/\\"

// Weights are kept in hundredths so that the maximum sum is exactly 100
// and Score of a long fully-mixed secret is exactly 1.0.
const (
	pointsLong   = 30 // 12+ characters
	pointsMedium = 20 // 8..11 characters
	pointsShort  = 10 // 6..7 characters

	pointsUpper   = 15
	pointsLower   = 15
	pointsDigit   = 15
	pointsSpecial = 25

	maxPoints = 100
)

// Strength labels returned by Label.
const (
	LabelWeak   = "Weak"
	LabelFair   = "Fair"
	LabelGood   = "Good"
	LabelStrong = "Strong"
)

// Score rates secret in [0.0, 1.0].
//
// Length contributes 0.30 for 12 or more characters, 0.20 for 8 or more and
// 0.10 for 6 or more; only the highest tier applies. Each character class
// present adds independently: uppercase 0.15, lowercase 0.15, digit 0.15,
// a ScoringSpecials character 0.25. Length is counted in runes.
func Score(secret string) float64 {
	points := lengthPoints(utf8.RuneCountInString(secret))

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range secret {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(ScoringSpecials, r):
			hasSpecial = true
		}
	}

	if hasUpper {
		points += pointsUpper
	}
	if hasLower {
		points += pointsLower
	}
	if hasDigit {
		points += pointsDigit
	}
	if hasSpecial {
		points += pointsSpecial
	}

	return clamp(float64(points) / maxPoints)
}

func lengthPoints(n int) int {
	switch {
	case n >= 12:
		return pointsLong
	case n >= 8:
		return pointsMedium
	case n >= 6:
		return pointsShort
	default:
		return 0
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Label buckets a Score result into Weak (<0.25), Fair (<0.5), Good (<0.75)
// or Strong.
func Label(score float64) string {
	switch {
	case score < 0.25:
		return LabelWeak
	case score < 0.5:
		return LabelFair
	case score < 0.75:
		return LabelGood
	default:
		return LabelStrong
	}
}

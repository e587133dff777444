// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// Estimate is an entropy-based second opinion next to the deterministic
// Score. It is informational only and never feeds back into Score.
type Estimate struct {
	// Score is the zxcvbn score from 0 (guessable) to 4 (very unguessable).
	Score int
	// Entropy is the estimated entropy in bits.
	Entropy float64
	// CrackTime is a human readable offline crack time, e.g. "3 hours".
	CrackTime string
}

// EstimateStrength runs zxcvbn over secret. userInputs are penalized when
// they appear in the secret; callers pass the service and account names.
func EstimateStrength(secret string, userInputs ...string) Estimate {
	result := zxcvbn.PasswordStrength(secret, userInputs)

	return Estimate{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}

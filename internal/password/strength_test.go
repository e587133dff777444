// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   float64
	}{
		{name: "empty", secret: "", want: 0},
		{name: "short lowercase", secret: "weak", want: 0.15},
		{name: "six lowercase", secret: "abcdef", want: 0.25},
		{name: "eight mixed case digits", secret: "Medium12", want: 0.65},
		{name: "eleven all classes", secret: "Strong@123!", want: 0.90},
		{name: "twelve digits", secret: "123456789012", want: 0.45},
		{name: "long all classes", secret: "Very$tr0ngP@ssw0rd!123", want: 1.0},
		{name: "sixteen all classes", secret: "Aa1!Aa1!Aa1!Aa1!", want: 1.0},
		{name: "only specials", secret: "`/\\~", want: 0.25},
		{name: "non-ascii letters do not count", secret: "ÄÖÜäöü", want: 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.secret), 1e-9)
		})
	}
}

func TestScore_MaxIsExactlyOne(t *testing.T) {
	assert.Equal(t, 1.0, Score("Aa1!Aa1!Aa1!Aa1!"))
}

func TestScore_EveryScoringSpecialCounts(t *testing.T) {
	for _, r := range ScoringSpecials {
		assert.InDelta(t, 0.25, Score(string(r)), 1e-9, "special %q", r)
	}
}

func TestScore_InRange(t *testing.T) {
	inputs := []string{"", "a", "A1", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "Aa1!", strings.Repeat("Aa1!", 50), "пароль"}
	for _, in := range inputs {
		s := Score(in)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestScore_MonotonicInLength(t *testing.T) {
	for _, unit := range []string{"a", "A", "1", "!", "aA", "a1!", "Aa1!"} {
		prev := -1.0
		for n := 0; n <= 20; n++ {
			s := Score(strings.Repeat(unit, n))
			assert.GreaterOrEqual(t, s, prev, "unit %q length %d", unit, n)
			prev = s
		}
	}
}

func TestScore_MonotonicInClasses(t *testing.T) {
	base := "aaaaaaaa"
	additions := []string{"A", "1", "!"}

	prev := Score(base)
	current := base
	for _, add := range additions {
		current += add
		s := Score(current)
		assert.Greater(t, s, prev, "adding %q", add)
		prev = s
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, LabelWeak, Label(0))
	assert.Equal(t, LabelWeak, Label(0.24))
	assert.Equal(t, LabelFair, Label(0.25))
	assert.Equal(t, LabelGood, Label(0.5))
	assert.Equal(t, LabelGood, Label(0.74))
	assert.Equal(t, LabelStrong, Label(0.75))
	assert.Equal(t, LabelStrong, Label(1))
}

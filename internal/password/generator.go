// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Alphabets used by the generator. GeneratorSpecials is a subset of
// ScoringSpecials, so every generated secret scores the special bonus.
const (
	Uppercase         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase         = "abcdefghijklmnopqrstuvwxyz"
	Digits            = "0123456789"
	GeneratorSpecials = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// DefaultLength is the length used when callers have no preference.
	DefaultLength = 16

	// MinLength is the guaranteed-class floor. Shorter requests still
	// produce MinLength characters.
	MinLength = 4
)

var allClasses = Uppercase + Lowercase + Digits + GeneratorSpecials

// Generator draws characters from an entropy source. The zero value is not
// usable; use NewGenerator.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithSource returns a Generator reading randomness from src.
func NewGeneratorWithSource(src io.Reader) *Generator {
	return &Generator{rand: src}
}

// Generate returns a random secret containing at least one uppercase letter,
// one lowercase letter, one digit and one GeneratorSpecials character.
//
// One character is drawn from each class, max(0, length-4) more from the
// union of all classes, and the whole sequence is shuffled uniformly. The
// result has length max(length, MinLength): a request below the floor is
// not truncated.
func (g *Generator) Generate(length int) (string, error) {
	extra := length - MinLength
	if extra < 0 {
		extra = 0
	}

	out := make([]byte, 0, MinLength+extra)
	for _, alphabet := range []string{Uppercase, Lowercase, Digits, GeneratorSpecials} {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	for i := 0; i < extra; i++ {
		c, err := g.pick(allClasses)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := g.shuffle(out); err != nil {
		return "", err
	}

	return string(out), nil
}

// pick returns a uniformly chosen byte of alphabet.
func (g *Generator) pick(alphabet string) (byte, error) {
	i, err := g.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle is a Fisher–Yates permutation driven by the generator's source.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return int(v.Int64()), nil
}

var defaultGenerator = NewGenerator()

// Generate is Generator.Generate on a crypto/rand backed generator.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// MustGenerate is like Generate but panics if the entropy source fails.
func MustGenerate(length int) string {
	s, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return s
}

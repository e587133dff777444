// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package password holds the pure password algorithms used by the vault:
// deterministic strength scoring, a zxcvbn-based crack-time estimate and
// class-covering random generation.
//
// Character classes are ASCII-only: A–Z, a–z, 0–9 and a fixed set of
// punctuation. No locale or Unicode script awareness is involved.
package password

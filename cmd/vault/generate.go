// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/password"
)

func newGenerateCmd(e *cliEnv) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Print random passwords with upper, lower, digit and special characters",
		Long:    "Print random passwords. The length comes from --length or the configured default.",
		Aliases: []string{"gen"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := e.loadConfig("vault-cli")
			if err != nil {
				return err
			}

			for range count {
				secret, err := password.Generate(cfg.UI.GeneratedLength)
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), secret); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "number of passwords")
	return cmd
}

func newScoreCmd(e *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "score [password]",
		Short: "Rate a password; prompts when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret string
			if len(args) == 1 {
				secret = args[0]
			} else {
				var err error
				if secret, err = e.prompt(cmd, "Password: "); err != nil {
					return err
				}
			}

			score := password.Score(secret)
			est := password.EstimateStrength(secret)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score:      %.2f (%s)\n", score, password.Label(score))
			fmt.Fprintf(out, "Estimate:   %d/4, %.1f bits\n", est.Score, est.Entropy)
			_, err := fmt.Fprintf(out, "Crack time: %s\n", est.CrackTime)
			return err
		},
	}
}

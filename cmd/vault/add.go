// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/password"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errSecretMismatch = errors.New("passwords do not match")

func newAddCmd(e *cliEnv) *cobra.Command {
	var (
		notes    string
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "add <service> <account>",
		Short: "Store a password, replacing any existing one for the same service and account",
		Long: "Store a password. Unless --generate is given the password is read without echo " +
			"from the terminal, or as one line from piped stdin. Generated passwords use --length.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withSession(cmd, func(sess *session) error {
				c := models.Credential{
					Service: strings.TrimSpace(args[0]),
					Account: strings.TrimSpace(args[1]),
					Notes:   strings.TrimSpace(notes),
				}

				var err error
				if generate {
					c.Secret, err = password.Generate(sess.cfg.UI.GeneratedLength)
				} else {
					c.Secret, err = e.readNewSecret(cmd)
				}
				if err != nil {
					return err
				}

				if err = e.validator.Validate(cmd.Context(), c); err != nil {
					return err
				}

				res := <-sess.store.Add(c.Service, c.Account, c.Secret, c.Notes)
				if res.Err != nil {
					return fmt.Errorf("add %s: %w", c.Key(), res.Err)
				}

				score := password.Score(c.Secret)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s @ %s (id %s, strength %s %.0f%%)\n",
					c.Account, c.Service, res.Record.ID, password.Label(score), score*100)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate a random password instead of prompting")

	return cmd
}

// readNewSecret prompts twice and requires both entries to match.
func (e *cliEnv) readNewSecret(cmd *cobra.Command) (string, error) {
	secret, err := e.prompt(cmd, "Password: ")
	if err != nil {
		return "", err
	}
	again, err := e.prompt(cmd, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if secret != again {
		return "", errSecretMismatch
	}
	return secret, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errAmbiguous = errors.New("more than one item matches")

func newCopyCmd(e *cliEnv) *cobra.Command {
	var copyAccount bool

	cmd := &cobra.Command{
		Use:   "copy <id | service> [account]",
		Short: "Copy a password to the clipboard and clear it again after a delay",
		Long: "Copy a password to the clipboard. The item is looked up by ID, or by service and " +
			"optional account. The command waits for the configured clipboard delay and then " +
			"clears the clipboard if it still holds the password.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c     models.Credential
				delay time.Duration
			)
			err := e.withSession(cmd, func(sess *session) error {
				var err error
				c, err = findCredential(sess.store.Passwords(), args)
				delay = sess.cfg.UI.ClipboardClearAfter
				return err
			})
			if err != nil {
				return err
			}

			value, what := c.Secret, "password"
			if copyAccount {
				value, what = c.Account, "account"
			}

			if err = e.clipboard.WriteAll(value); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			out := cmd.OutOrStdout()
			if copyAccount || delay <= 0 {
				_, err = fmt.Fprintf(out, "Copied %s for %s @ %s\n", what, c.Account, c.Service)
				return err
			}

			fmt.Fprintf(out, "Copied %s for %s @ %s, clearing in %s\n", what, c.Account, c.Service, delay)
			cleared, err := clipboard.ClearAfter(cmd.Context(), e.clipboard, value, delay)
			if err != nil {
				return fmt.Errorf("clear clipboard: %w", err)
			}
			if cleared {
				_, err = fmt.Fprintln(out, "Clipboard cleared")
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&copyAccount, "account", "u", false, "copy the account name instead of the password")
	return cmd
}

// findCredential resolves args to exactly one item: an ID match wins,
// otherwise service (and account when given) must match exactly.
func findCredential(items []models.Credential, args []string) (models.Credential, error) {
	if len(args) == 1 {
		for _, c := range items {
			if c.ID == args[0] {
				return c, nil
			}
		}
	}

	var found []models.Credential
	for _, c := range items {
		if c.Service != args[0] {
			continue
		}
		if len(args) == 2 && c.Account != args[1] {
			continue
		}
		found = append(found, c)
	}

	switch len(found) {
	case 0:
		return models.Credential{}, fmt.Errorf("%w: %v", errNoSuchItem, args)
	case 1:
		return found[0], nil
	default:
		return models.Credential{}, fmt.Errorf("%w: %d accounts at %s, name one", errAmbiguous, len(found), args[0])
	}
}

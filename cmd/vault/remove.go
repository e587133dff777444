// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errNoSuchItem = errors.New("no such item")

func newRemoveCmd(e *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a credential by the ID shown in list",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := e.validator.Validate(cmd.Context(), models.Credential{ID: id}, validators.FieldID); err != nil {
				return err
			}

			return e.withSession(cmd, func(sess *session) error {
				res := <-sess.store.Delete(id)
				if res.Err != nil {
					return fmt.Errorf("delete %s: %w", id, res.Err)
				}
				if !res.Applied {
					return fmt.Errorf("%w: %s", errNoSuchItem, id)
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s @ %s\n", res.Record.Account, res.Record.Service)
				return err
			})
		},
	}
}

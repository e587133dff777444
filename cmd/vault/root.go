// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

// newRootCmd creates the vault command with all subcommands registered.
// Without a subcommand it opens the terminal UI.
func newRootCmd(e *cliEnv) *cobra.Command {
	root := &cobra.Command{
		Use:           "vault",
		Short:         "Local credential vault backed by the OS secure store",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := e.openSession(cmd, "vault-tui")
			if err != nil {
				return err
			}
			defer sess.Close()

			return e.runUI(cmd.Context(), sess)
		},
	}

	e.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newAddCmd(e),
		newListCmd(e),
		newSearchCmd(e),
		newRemoveCmd(e),
		newCopyCmd(e),
		newGenerateCmd(e),
		newScoreCmd(e),
		newVersionCmd(e),
	)

	return root
}

// runInteractive runs the terminal UI with the periodic refresh job in the
// background.
func (e *cliEnv) runInteractive(ctx context.Context, sess *session) error {
	ui := tui.New(sess.store, tui.Options{
		GeneratedLength:     sess.cfg.UI.GeneratedLength,
		ClipboardClearAfter: sess.cfg.UI.ClipboardClearAfter,
		BuildInfo:           e.info,
		Clipboard:           e.clipboard,
		Validator:           e.validator,
	}, sess.log)

	refresh := service.NewRefreshJob(sess.store, sess.cfg.Workers.RefreshInterval, sess.log)

	app, err := client.NewApp(ui, workers.NewWorkers(refresh), sess.log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return app.Run(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the vault, built on
// bubbletea. It renders the credential list published by the store and
// sends add and delete requests back to it.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Vault is the part of service.CredentialStore the TUI talks to.
type Vault interface {
	Add(svc, account, secret, notes string) <-chan service.Result
	Delete(id string) <-chan service.Result
	Subscribe() (<-chan []models.Credential, func())
	Refresh(ctx context.Context) error
}

// Options tune the interactive session.
type Options struct {
	// GeneratedLength is the length used by the generate key in the add form.
	GeneratedLength int

	// ClipboardClearAfter is how long a copied value stays on the clipboard.
	// Zero keeps it.
	ClipboardClearAfter time.Duration

	// BuildInfo is shown on the about screen.
	BuildInfo models.AppBuildInfo

	// Clipboard defaults to the system clipboard.
	Clipboard clipboard.Clipboard

	// Validator checks the add form. Defaults to the credential validator
	// the CLI uses.
	Validator validators.Validator
}

type TUI struct {
	vault Vault
	opts  Options
	log   *logger.Logger
}

func New(vault Vault, opts Options, log *logger.Logger) *TUI {
	return &TUI{vault: vault, opts: opts, log: log}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	updates, cancel := t.vault.Subscribe()
	defer cancel()

	model := newAppModel(ctx, t.vault, updates, t.opts, t.log)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.log.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return err
	}

	// a value copied right before quitting must not outlive the session
	if result, ok := final.(appModel); ok {
		result.clearPendingClipboard()
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// backendOpener opens the secure backend selected by cfg. The returned
// closer releases it after the store is closed.
type backendOpener func(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (store.Backend, io.Closer, error)

// cliEnv holds everything a command needs from the outside world.
type cliEnv struct {
	info      models.AppBuildInfo
	flags     *config.Flags
	open      backendOpener
	prompt    secretPrompter
	clipboard clipboard.Clipboard
	validator validators.Validator
	runUI     func(ctx context.Context, sess *session) error
}

func newCLIEnv(info models.AppBuildInfo) *cliEnv {
	e := &cliEnv{
		info:      info,
		open:      openStorage,
		prompt:    terminalPrompt,
		clipboard: clipboard.System{},
		validator: validators.NewCredentialValidator(),
	}
	e.runUI = e.runInteractive
	return e
}

func openStorage(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (store.Backend, io.Closer, error) {
	s, err := store.NewStorage(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return s.Backend, s, nil
}

// session is one opened vault: the merged configuration, a logger and a
// loaded credential store.
type session struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	store  *service.CredentialStore
	closer io.Closer
}

func (s *session) Close() error {
	return errors.Join(s.store.Close(), s.closer.Close())
}

// loadConfig merges defaults, environment, flags and the JSON file, then
// builds the logger described by the result.
func (e *cliEnv) loadConfig(role string) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(e.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	var log *logger.Logger
	if cfg.Log.File != "" {
		log = logger.NewFileLogger(role, cfg.Log.File)
	} else {
		log = logger.NewLogger(role)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

func (e *cliEnv) openSession(cmd *cobra.Command, role string) (*session, error) {
	cfg, log, err := e.loadConfig(role)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	backend, closer, err := e.open(ctx, *cfg, log)
	if err != nil {
		log.Err(err).Str("func", "cliEnv.openSession").Msg("failed to open secure storage")
		return nil, fmt.Errorf("open storage: %w", err)
	}

	st, err := service.NewCredentialStore(backend, log, service.WithStableIDs(cfg.App.StableIDs))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	log.Debug().
		Str("func", "cliEnv.openSession").
		Bool("in_memory", cfg.Storage.InMemory).
		Str("driver", cfg.Storage.Driver).
		Str("namespace", cfg.App.Namespace).
		Msg("vault opened")

	return &session{cfg: cfg, log: log, store: st, closer: closer}, nil
}

// withSession opens the vault, runs fn and closes the vault again, joining
// a close error into the result.
func (e *cliEnv) withSession(cmd *cobra.Command, fn func(sess *session) error) (err error) {
	sess, err := e.openSession(cmd, "vault-cli")
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, sess.Close())
	}()

	return fn(sess)
}

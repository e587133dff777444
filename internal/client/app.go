// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

var ErrNoUI = errors.New("no user interface configured")

type App struct {
	ui      UI
	workers *workers.Workers
	log     *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp groups ui with the background workers that run while it is open.
// ws may be nil.
func NewApp(ui UI, ws *workers.Workers, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}
	return &App{ui: ui, workers: ws, log: log}, nil
}

// Run starts the workers, blocks in the UI and stops the workers once the
// UI returns.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	defer a.workers.Stop()

	a.log.Info().Str("func", "App.Run").Msg("interactive session started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.log.Info().Str("func", "App.Run").Msg("interactive session finished")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/hope-garden/internal/adapter"
	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/models"
)

type App struct {
	adapter adapter.ServerAdapter
	cfg     config.ClientConfig
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		cfg:     cfg,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	if err := cmd.checkArgs(args[1:]); err != nil {
		return err
	}

	if cmd.auth {
		if err := a.login(ctx); err != nil {
			return err
		}
		defer a.logout(ctx)
	}

	result, err := cmd.run(a, ctx, args[1:])
	if err != nil {
		return err
	}

	return a.print(result)
}

// Usage writes the list of supported commands to w.
func Usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

func (a *App) requireCredentials() error {
	if a.cfg.Email == "" || a.cfg.Password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

func (a *App) login(ctx context.Context) error {
	if err := a.requireCredentials(); err != nil {
		return err
	}

	_, err := a.adapter.Login(ctx, models.LoginRequest{Email: a.cfg.Email, Password: a.cfg.Password})
	return err
}

func (a *App) logout(ctx context.Context) {
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Err(err).Msg("logout failed")
	}
}

func (a *App) print(result any) error {
	switch v := result.(type) {
	case nil:
		_, err := fmt.Fprintln(a.out, "ok")
		return err
	case string:
		_, err := fmt.Fprintln(a.out, v)
		return err
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

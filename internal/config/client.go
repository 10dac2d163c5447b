// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidClientConfigs indicates a missing server URL or a non-positive
// client timeout.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

const (
	DefaultClientServerURL = "http://localhost:8000"
	DefaultClientTimeout   = 15 * time.Second
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// ServerURL is the base URL of the hope-garden server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Email and Password are used to log in before commands that need a
	// session.
	// Env: CLIENT_EMAIL, CLIENT_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// Timeout bounds every single request.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetClientConfig merges defaults, CLIENT_* environment variables and the
// flags found in args. It returns the positional arguments left after the
// flags, which form the client command.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		ServerURL: DefaultClientServerURL,
		Timeout:   DefaultClientTimeout,
	}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerURL == "" || cfg.Timeout <= 0 {
		return nil, nil, ErrInvalidClientConfigs
	}

	return cfg, rest, nil
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-s server base URL
//	-e account email
//	-p account password
//	-timeout per-request timeout (e.g., "10s")
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("hope-garden-client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.ServerURL, "s", "", "Server base URL")
	fs.StringVar(&cfg.Email, "e", "", "Account email")
	fs.StringVar(&cfg.Password, "p", "", "Account password")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

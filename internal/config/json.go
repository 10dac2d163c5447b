// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version           string `json:"version"`
		CredentialScheme  string `json:"credential_scheme"`
		BcryptCost        int    `json:"bcrypt_cost"`
		SessionCookieName string `json:"session_cookie_name"`
		SecureCookie      bool   `json:"secure_cookie"`
		LoginPath         string `json:"login_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver   string `json:"driver"`
			DSN      string `json:"dsn"`
			SkipSeed bool   `json:"skip_seed"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			CredentialScheme:  jsonCfg.App.CredentialScheme,
			BcryptCost:        jsonCfg.App.BcryptCost,
			SessionCookieName: jsonCfg.App.SessionCookieName,
			SecureCookie:      jsonCfg.App.SecureCookie,
			LoginPath:         jsonCfg.App.LoginPath,
		},
		Storage: Storage{
			DB: DB{
				Driver:   jsonCfg.Storage.DB.Driver,
				DSN:      jsonCfg.Storage.DB.DSN,
				SkipSeed: jsonCfg.Storage.DB.SkipSeed,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

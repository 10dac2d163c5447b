// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/crypto"
	"github.com/MKhiriev/hope-garden/internal/handler"
	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/server"
	"github.com/MKhiriev/hope-garden/internal/service"
	"github.com/MKhiriev/hope-garden/internal/session"
	"github.com/MKhiriev/hope-garden/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hope-garden-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")
	if cfg.App.CredentialScheme == config.CredentialSchemePlaintext {
		log.Warn().Msg("passwords are stored and compared in plaintext")
	}

	verifier, err := crypto.NewCredentialVerifier(cfg.App.CredentialScheme, cfg.App.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential verifier")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, verifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, session.NewMemoryStore(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

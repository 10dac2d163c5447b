// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/hope-garden/internal/config"
	"github.com/MKhiriev/hope-garden/internal/handler/grpc"
	"github.com/MKhiriev/hope-garden/internal/handler/http"
	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured
// and the gRPC health handler when a gRPC address is configured. The
// storage pinger drives the reported health status.
func NewHandlers(services *service.Services, storage grpc.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(storage, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

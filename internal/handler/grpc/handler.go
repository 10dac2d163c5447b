// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the application.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/hope-garden/internal/logger"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "hope-garden"

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server and keeps its status in line with the storage:
// SERVING while a ping succeeds, NOT_SERVING otherwise.
type Handler struct {
	health  *health.Server
	storage Pinger

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose status starts as NOT_SERVING until
// the first [Handler.CheckStorage].
func NewHandler(storage Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health:  health.NewServer(),
		storage: storage,
		logger:  logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// CheckStorage pings the storage and updates the reported status.
func (h *Handler) CheckStorage(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.storage == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else if err := h.storage.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "grpc.CheckStorage").Msg("storage is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown reports NOT_SERVING to all watchers and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/hope-garden/internal/config"
	myGRPC "github.com/MKhiriev/hope-garden/internal/handler/grpc"
	"github.com/MKhiriev/hope-garden/internal/logger"
)

const healthCheckInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %q: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		done:            make(chan struct{}),
		logger:          logger,
	}, nil
}

func (g *grpcServer) addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) serve() error {
	go g.watchStorage()

	g.logger.Info().Str("address", g.addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// watchStorage refreshes the health status until shutdown.
func (g *grpcServer) watchStorage() {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckInterval/2)
		g.handler.CheckStorage(ctx)
		cancel()

		select {
		case <-g.done:
			return
		case <-ticker.C:
		}
	}
}

func (g *grpcServer) shutdown() {
	g.stopOnce.Do(func() {
		g.logger.Info().Msg("gRPC server Shutdown")
		close(g.done)
		g.handler.Shutdown()
		g.server.GracefulStop()
		// left open when Serve never ran
		g.gRPCNetListener.Close()
	})
}

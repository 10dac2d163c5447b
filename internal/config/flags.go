// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-db-driver database driver (sqlite3 or pgx)
//	-d database DSN (file path for sqlite3)
//	-skip-seed do not seed empty content tables
//	-c/-config json file path with configs
//	-credential-scheme plaintext, bcrypt or argon2id
//	-cookie-name session cookie name
//	-secure-cookie mark the session cookie as Secure
//	-login-path redirect target for unauthenticated requests
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-version application version
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("hope-garden", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var dbDriver, databaseDSN string
	var skipSeed, secureCookie bool
	var jsonConfigPath string
	var credentialScheme, cookieName, loginPath, version string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net gRPC health server address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&skipSeed, "skip-seed", false, "Do not seed empty content tables")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&credentialScheme, "credential-scheme", "", "Credential scheme (plaintext, bcrypt, argon2id)")
	fs.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	fs.BoolVar(&secureCookie, "secure-cookie", false, "Mark session cookie as Secure")
	fs.StringVar(&loginPath, "login-path", "", "Login redirect path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:           version,
			CredentialScheme:  credentialScheme,
			SessionCookieName: cookieName,
			SecureCookie:      secureCookie,
			LoginPath:         loginPath,
		},
		Storage: Storage{
			DB: DB{
				Driver:   dbDriver,
				DSN:      databaseDSN,
				SkipSeed: skipSeed,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

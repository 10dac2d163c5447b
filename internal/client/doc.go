// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the hope-garden API.
//
// Each invocation runs one command. Commands that need a session log in with
// the configured credentials first and log out when they are done.
package client

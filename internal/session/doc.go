// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the login state of the site: an in-process token
// store mapping opaque session tokens to the identity captured at login, and
// the gate that decides whether a request may reach protected content.
//
// Sessions live only in process memory. They do not expire and are lost on
// restart; every client is anonymous again after that.
package session

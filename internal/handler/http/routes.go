// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
		r.Get("/api/user/me", h.me)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/comments", h.listUserComments)
		r.Get("/api/history", h.listViewHistory)

		r.Get("/api/exercises", h.listExercises)
		r.Post("/api/exercises", h.addExercise)
		r.Get("/api/exercises/{id}", h.getExercise)

		r.Get("/api/advice", h.listAdvice)
		r.Post("/api/advice", h.addAdvice)
		r.Get("/api/advice/{id}", h.getAdvice)

		r.Get("/api/comments", h.listComments)
		r.Post("/api/comments", h.postComment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/hope-garden/models"
)

type command struct {
	usage string
	// auth commands run inside a login/logout pair
	auth    bool
	minArgs int
	maxArgs int // -1 means unbounded
	run     func(a *App, ctx context.Context, args []string) (any, error)
}

var commands = map[string]command{
	"version": {
		usage: "version",
		run: func(a *App, ctx context.Context, _ []string) (any, error) {
			return a.adapter.Version(ctx)
		},
	},
	"register": {
		usage:   "register <name>",
		minArgs: 1, maxArgs: -1,
		run: func(a *App, ctx context.Context, args []string) (any, error) {
			if err := a.requireCredentials(); err != nil {
				return nil, err
			}
			return a.adapter.Register(ctx, models.RegisterRequest{
				Name:     strings.Join(args, " "),
				Email:    a.cfg.Email,
				Password: a.cfg.Password,
			})
		},
	},
	"me": {
		usage: "me",
		auth:  true,
		run: func(a *App, ctx context.Context, _ []string) (any, error) {
			identity, _, err := a.adapter.Me(ctx)
			return identity, err
		},
	},
	"exercises": {
		usage: "exercises [id]",
		auth:  true, maxArgs: 1,
		run: func(a *App, ctx context.Context, args []string) (any, error) {
			if len(args) == 0 {
				return a.adapter.ListExercises(ctx)
			}
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return a.adapter.GetExercise(ctx, id)
		},
	},
	"add-exercise": {
		usage: "add-exercise <name> <description> <video_url>",
		auth:  true, minArgs: 3, maxArgs: 3,
		run: func(a *App, ctx context.Context, args []string) (any, error) {
			return nil, a.adapter.AddExercise(ctx, models.ExerciseRequest{
				Name:        args[0],
				Description: args[1],
				VideoURL:    args[2],
			})
		},
	},
	"advice": {
		usage: "advice [id]",
		auth:  true, maxArgs: 1,
		run: func(a *App, ctx context.Context, args []string) (any, error) {
			if len(args) == 0 {
				return a.adapter.ListAdvice(ctx)
			}
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return a.adapter.GetAdvice(ctx, id)
		},
	},
	"add-advice": {
		usage: "add-advice <name> <content> <video_url>",
		auth:  true, minArgs: 3, maxArgs: 3,
		run: func(a *App, ctx context.Context, args []string) (any, error) {
			return nil, a.adapter.AddAdvice(ctx, models.AdviceRequest{
				Name:     args[0],
				Content:  args[1],
				VideoURL: args[2],
			})
		},
	},
	"comments": {
		usage: "comments",
		auth:  true,
		run: func(a *App, ctx context.Context, _ []string) (any, error) {
			return a.adapter.ListComments(ctx)
		},
	},
	"my-comments": {
		usage: "my-comments",
		auth:  true,
		run: func(a *App, ctx context.Context, _ []string) (any, error) {
			return a.adapter.ListUserComments(ctx)
		},
	},
	"comment": {
		usage: "comment <first_name> <last_name> <text...>",
		auth:  true, minArgs: 3, maxArgs: -1,
		run: func(a *App, ctx context.Context, args []string) (any, error) {
			return nil, a.adapter.PostComment(ctx, models.CommentRequest{
				FirstName: args[0],
				LastName:  args[1],
				Comment:   strings.Join(args[2:], " "),
			})
		},
	},
	"history": {
		usage: "history",
		auth:  true,
		run: func(a *App, ctx context.Context, _ []string) (any, error) {
			return a.adapter.History(ctx)
		},
	},
}

func (c command) checkArgs(args []string) error {
	if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
		return fmt.Errorf("%w: usage: %s", ErrInvalidArguments, c.usage)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", ErrInvalidArguments, s)
	}
	return id, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hope-garden/internal/logger"
	"github.com/MKhiriev/hope-garden/internal/utils"
)

func newTraceHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: logger.New(buf, "test"), traceIDs: utils.NewUUIDGenerator()}
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "my-custom-trace-id")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"my-custom-trace-id"`)
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	first := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	id, err := uuid.Parse(first.Header().Get(traceIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}

func TestWithTraceID_DoesNotTouchParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	buf.Reset()
	h.logger.Info().Msg("outside")

	assert.NotContains(t, buf.String(), "trace_id")
}

func TestWithTraceID_ReplacesMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "control characters", header: "abc\ninjected"},
		{name: "quotes", header: `x","level":"error`},
		{name: "too long", header: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTraceHandler(&buf)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[traceIDHeader] = []string{tt.header}
			rec := httptest.NewRecorder()

			h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

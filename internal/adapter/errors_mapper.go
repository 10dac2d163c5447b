// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/hope-garden/models"
)

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server's human-readable reason.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := reasonFromBody(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
	case http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
		// protected routes redirect anonymous clients to the login page
		return fmt.Errorf("%w: redirected to %s", ErrUnauthorized, resp.Header().Get("Location"))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, reason)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrNotSaved, reason)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, reason)
	default:
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), reason)
	}
}

func reasonFromBody(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Reason != "" {
		return errResp.Reason
	}
	return strings.TrimSpace(string(body))
}

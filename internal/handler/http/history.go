// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hope-garden/internal/utils"
)

func (h *Handler) listViewHistory(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	history, err := h.services.HistoryService.ListViewHistory(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/shelfscope/internal/logger"
	"github.com/pdiddy/shelfscope/pkg/types"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.For(r.Context()).WithError(err).Error("encoding response")
	}
}

// respondWithError logs the cause and sends a fixed message. The cause never
// reaches the client.
func respondWithError(w http.ResponseWriter, r *http.Request, message string, err error, status int) {
	logger.For(r.Context()).WithError(err).WithFields(logrus.Fields{
		"status": status,
		"path":   r.URL.Path,
	}).Error(message)
	writeJSON(w, r, status, types.ErrorResponse{Error: message})
}

// respondWithValidationError sends a 400 with message.
func respondWithValidationError(w http.ResponseWriter, r *http.Request, message string) {
	logger.For(r.Context()).WithField("reason", message).Warn("validation error")
	writeJSON(w, r, http.StatusBadRequest, types.ErrorResponse{Error: message})
}

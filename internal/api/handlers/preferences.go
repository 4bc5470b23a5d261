package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"rookery/internal/prefs"
)

// GetPreferences handles GET /api/preferences. It returns the persisted
// preferences record, creating the defaults file on first access.
func GetPreferences(store *prefs.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Load()
		if err != nil {
			slog.Error("failed to load preferences", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load preferences")
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// UpdatePreferences handles PUT /api/preferences. The body is decoded over
// a default record, so a partial body keeps defaults for omitted fields;
// the resulting full record replaces the file and is echoed back.
func UpdatePreferences(store *prefs.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := prefs.Default()
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if err := store.Save(p); err != nil {
			slog.Error("failed to save preferences", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save preferences")
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

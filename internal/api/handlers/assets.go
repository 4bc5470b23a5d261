package handlers

import (
	"log/slog"
	"net/http"

	"rookery/internal/assets"
)

// GetAssets handles GET /api/assets. It returns the catalog of installed
// background themes, piece sets, and board skins the preferences UI can
// offer.
func GetAssets(scanner *assets.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := scanner.Scan(r.Context())
		if err != nil {
			slog.Error("failed to scan assets", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to scan assets")
			return
		}

		writeJSON(w, http.StatusOK, cat)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rookery/internal/models"
	"rookery/internal/storage"
)

// ListGames handles GET /api/games. An optional "limit" query parameter
// caps the number of returned games; games are ordered most recent first.
func ListGames(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}

		games, err := store.ListGames(r.Context(), limit)
		if err != nil {
			slog.Error("failed to list games", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list games")
			return
		}
		if games == nil {
			games = []models.Game{}
		}

		writeJSON(w, http.StatusOK, games)
	}
}

// GetGame handles GET /api/games/{id}.
func GetGame(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		game, err := store.GetGame(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Game not found")
				return
			}
			slog.Error("failed to get game", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get game")
			return
		}

		writeJSON(w, http.StatusOK, game)
	}
}

// SaveGame handles POST /api/games. It archives a finished game and returns
// the stored record with its assigned ID.
func SaveGame(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var game models.Game
		if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if err := store.SaveGame(r.Context(), &game); err != nil {
			// Validation failures (players, result) surface as 400s.
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, game)
	}
}

// DeleteGame handles DELETE /api/games/{id}.
func DeleteGame(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := store.DeleteGame(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Game not found")
				return
			}
			slog.Error("failed to delete game", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to delete game")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"rookery/internal/models"
)

func TestSaveGame_AssignsID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	g := models.Game{White: "Kasparov", Black: "Deep Blue", Result: "0-1"}
	if err := store.SaveGame(ctx, &g); err != nil {
		t.Fatalf("SaveGame() error: %v", err)
	}
	if g.ID == "" {
		t.Error("SaveGame() did not assign an ID")
	}
	if g.SavedAt.IsZero() {
		t.Error("SaveGame() did not set SavedAt")
	}
}

func TestSaveGame_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := models.Game{
		White:    "Anand",
		Black:    "Carlsen",
		Result:   "1/2-1/2",
		Moves:    "e4 e5 Nf3 Nc6 Bb5 a6 Ba4 Nf6 O-O Be7",
		PlayedAt: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
	}
	if err := store.SaveGame(ctx, &want); err != nil {
		t.Fatalf("SaveGame() error: %v", err)
	}

	got, err := store.GetGame(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetGame() error: %v", err)
	}
	if got.White != want.White || got.Black != want.Black {
		t.Errorf("players = %q/%q, want %q/%q", got.White, got.Black, want.White, want.Black)
	}
	if got.Result != want.Result {
		t.Errorf("Result = %q, want %q", got.Result, want.Result)
	}
	if got.Moves != want.Moves {
		t.Errorf("Moves = %q, want %q", got.Moves, want.Moves)
	}
	if !got.PlayedAt.Equal(want.PlayedAt) {
		t.Errorf("PlayedAt = %v, want %v", got.PlayedAt, want.PlayedAt)
	}
}

func TestSaveGame_Invalid(t *testing.T) {
	tests := []struct {
		name string
		game models.Game
	}{
		{name: "missing white", game: models.Game{Black: "b", Result: "1-0"}},
		{name: "missing black", game: models.Game{White: "w", Result: "1-0"}},
		{name: "bad result", game: models.Game{White: "w", Black: "b", Result: "2-0"}},
		{name: "empty result", game: models.Game{White: "w", Black: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			g := tt.game
			if err := store.SaveGame(context.Background(), &g); err == nil {
				t.Error("SaveGame() expected error, got nil")
			}
		})
	}
}

func TestGetGame_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetGame(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestListGames_OrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		g := models.Game{
			White:    "White",
			Black:    "Black",
			Result:   "*",
			PlayedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.SaveGame(ctx, &g); err != nil {
			t.Fatalf("SaveGame(%d) error: %v", i, err)
		}
	}

	games, err := store.ListGames(ctx, 0)
	if err != nil {
		t.Fatalf("ListGames() error: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}
	// Most recent first.
	for i := 1; i < len(games); i++ {
		if games[i].PlayedAt.After(games[i-1].PlayedAt) {
			t.Errorf("games out of order at index %d", i)
		}
	}

	limited, err := store.ListGames(ctx, 2)
	if err != nil {
		t.Fatalf("ListGames(limit=2) error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d games, want 2", len(limited))
	}
}

func TestListGames_Empty(t *testing.T) {
	store := newTestStore(t)

	games, err := store.ListGames(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListGames() error: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("got %d games, want 0", len(games))
	}
}

func TestDeleteGame(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	g := models.Game{White: "w", Black: "b", Result: "1-0"}
	if err := store.SaveGame(ctx, &g); err != nil {
		t.Fatalf("SaveGame() error: %v", err)
	}

	if err := store.DeleteGame(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGame() error: %v", err)
	}
	if _, err := store.GetGame(ctx, g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestDeleteGame_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteGame(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

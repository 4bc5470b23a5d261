package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rookery/internal/models"
)

// validResults is the set of allowed game results, standard PGN notation.
var validResults = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// SaveGame inserts a game into the archive. If the game has no ID, a new
// UUID is assigned. The assigned ID and save timestamp are written back to g.
func (s *Store) SaveGame(ctx context.Context, g *models.Game) error {
	if g.White == "" || g.Black == "" {
		return errors.New("game must name both players")
	}
	if !validResults[g.Result] {
		return fmt.Errorf("invalid result %q: must be one of 1-0, 0-1, 1/2-1/2, *", g.Result)
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.PlayedAt.IsZero() {
		g.PlayedAt = time.Now().UTC()
	}
	g.SavedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, white, black, result, moves, played_at, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.White, g.Black, g.Result, g.Moves,
		g.PlayedAt.Format(time.RFC3339), g.SavedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting game %q: %w", g.ID, err)
	}
	return nil
}

// GetGame retrieves a single archived game by ID.
// Returns ErrNotFound if the ID does not exist.
func (s *Store) GetGame(ctx context.Context, id string) (models.Game, error) {
	var (
		g        models.Game
		playedAt string
		savedAt  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, white, black, result, moves, played_at, saved_at
		 FROM games WHERE id = ?`, id,
	).Scan(&g.ID, &g.White, &g.Black, &g.Result, &g.Moves, &playedAt, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Game{}, ErrNotFound
		}
		return models.Game{}, fmt.Errorf("getting game %q: %w", id, err)
	}

	g.PlayedAt = parseTime(playedAt)
	g.SavedAt = parseTime(savedAt)
	return g, nil
}

// ListGames returns archived games ordered by played_at DESC. A limit of 0
// returns all games.
func (s *Store) ListGames(ctx context.Context, limit int) ([]models.Game, error) {
	query := `SELECT id, white, black, result, moves, played_at, saved_at
		 FROM games ORDER BY played_at DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var (
			g        models.Game
			playedAt string
			savedAt  string
		)
		if err := rows.Scan(&g.ID, &g.White, &g.Black, &g.Result, &g.Moves, &playedAt, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning game row: %w", err)
		}
		g.PlayedAt = parseTime(playedAt)
		g.SavedAt = parseTime(savedAt)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating game rows: %w", err)
	}
	return games, nil
}

// DeleteGame removes a game from the archive.
// Returns ErrNotFound if the ID does not exist.
func (s *Store) DeleteGame(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting game %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package models

import "time"

// Game is a finished game in the archive. Moves holds the full movetext in
// standard algebraic notation, one space-separated token per half-move.
type Game struct {
	ID       string    `json:"id"`
	White    string    `json:"white"`
	Black    string    `json:"black"`
	Result   string    `json:"result"`
	Moves    string    `json:"moves"`
	PlayedAt time.Time `json:"played_at"`
	SavedAt  time.Time `json:"saved_at"`
}

// Package prefs persists the user's display and behavior preferences as a
// single JSON file. The record is replaced whole on every save; there is no
// per-field update path.
package prefs

// Preferences holds the user-facing settings for the chess application.
// Background, Pieces and Board name entries from the asset catalog.
type Preferences struct {
	Background   string `json:"Background"`
	Pieces       string `json:"Pieces"`
	Board        string `json:"Board"`
	PieceSounds  bool   `json:"PieceSounds"`
	ConfirmMove  bool   `json:"ConfirmMove"`
	EpsonRC      bool   `json:"EpsonRC"`
	CognexVision bool   `json:"CognexVision"`
}

// Default returns a Preferences value with every field at its built-in
// default. This is the record a fresh installation starts from, and the
// fallback whenever the persisted file cannot be decoded.
func Default() Preferences {
	return Preferences{
		Background:   "Cosmos",
		Pieces:       "NeoWood",
		Board:        "IcySea",
		PieceSounds:  false,
		ConfirmMove:  true,
		EpsonRC:      false,
		CognexVision: false,
	}
}

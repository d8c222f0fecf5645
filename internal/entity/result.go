package entity

import "time"

// GameResult - archive record written once a game reaches a terminal board.
type GameResult struct {
	GameID     string
	Winner     string // winning mark, or "-" for a draw
	Moves      int
	FinishedAt time.Time
}

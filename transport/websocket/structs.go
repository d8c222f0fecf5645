package websocket

import (
	"encoding/json"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// GameSnapshot is the derived view of a game sent to clients: the board
// under the cursor plus status fields computed from (history, cursor).
type GameSnapshot struct {
	ID      string         `json:"id"`
	Board   entity.Board   `json:"board"`
	Turn    string         `json:"player_turn,omitempty"`
	Winner  string         `json:"winner,omitempty"`
	Status  string         `json:"status"`
	Cursor  int            `json:"cursor"`
	Moves   int            `json:"moves"`
	History []entity.Board `json:"history,omitempty"`
}

// Payload is the request/response body shared by all actions.
type Payload struct {
	Session *entity.Session `json:"session,omitempty"`
	Game    *GameSnapshot   `json:"game,omitempty"`
	Cell    *int            `json:"cell,omitempty"`
	Move    *int            `json:"move,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// newGameSnapshot - builds the client view of a game. History is included
// only when withHistory is set; the move list is cheap but most actions
// need just the current board.
func newGameSnapshot(game *entity.Game, withHistory bool) *GameSnapshot {
	snapshot := &GameSnapshot{
		ID:     game.ID,
		Board:  game.CurrentBoard(),
		Winner: game.Winner(),
		Status: game.Status(),
		Cursor: game.Cursor,
		Moves:  len(game.History) - 1,
	}

	if !game.IsFinished() {
		snapshot.Turn = game.TurnToMove()
	}

	if withHistory {
		snapshot.History = game.History
	}

	return snapshot
}

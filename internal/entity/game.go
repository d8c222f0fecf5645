package entity

import (
	"fmt"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/apperror"
	"github.com/JOSongha/tutorial-tic-tac-toe/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Board - one snapshot of the 9-cell grid, indexed 0-8 in row-major order.
type Board = [9]string

// Game holds the full move history of a session and a cursor into it.
// History[0] is always the empty starting board; everything the client
// sees (turn, winner, status) is derived from (History, Cursor), never
// stored alongside it.
type Game struct {
	ID      string  `json:"id"`
	History []Board `json:"history"`
	Cursor  int     `json:"cursor"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		History: []Board{{}},
		Cursor:  0,
	}
}

// CurrentBoard - returns the snapshot the cursor points at.
func (that *Game) CurrentBoard() Board {
	return that.History[that.Cursor]
}

// TurnToMove - X moves on even cursors, O on odd ones.
func (that *Game) TurnToMove() string {
	if that.Cursor%2 == 0 {
		return tictactoe.PlayerX
	}
	return tictactoe.PlayerO
}

// MakeTurn - places the mark whose turn it is at the given cell.
//
// Any moves played after the current cursor from an earlier jump are
// discarded here, not on JumpTo: jumping back and forth without moving
// never loses history.
func (that *Game) MakeTurn(cell int) error {
	board := that.CurrentBoard()

	if tictactoe.Winner(board) != tictactoe.EmptyCell {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if board[cell] != tictactoe.EmptyCell {
		return apperror.ErrCellOccupied
	}

	board[cell] = that.TurnToMove()

	that.History = append(that.History[:that.Cursor+1], board)
	that.Cursor = len(that.History) - 1

	return nil
}

// JumpTo - relocates the cursor to an earlier (or later) move.
// History is left untouched; the abandoned branch is only dropped
// by the next MakeTurn.
func (that *Game) JumpTo(move int) error {
	if move < 0 || move >= len(that.History) {
		return fmt.Errorf("%w: move %d", apperror.ErrInvalidMove, move)
	}

	that.Cursor = move

	return nil
}

// Winner - the mark holding a completed line on the current board, if any.
func (that *Game) Winner() string {
	return tictactoe.Winner(that.CurrentBoard())
}

func (that *Game) IsFinished() bool {
	board := that.CurrentBoard()
	return tictactoe.Winner(board) != tictactoe.EmptyCell || tictactoe.IsDraw(board)
}

// Result - the outcome at the current board: a winner mark, PlayerTie
// for a full board with no winner, or EmptyCell while the game goes on.
func (that *Game) Result() string {
	board := that.CurrentBoard()

	if winner := tictactoe.Winner(board); winner != tictactoe.EmptyCell {
		return winner
	}

	if tictactoe.IsDraw(board) {
		return tictactoe.PlayerTie
	}

	return tictactoe.EmptyCell
}

// Status - derived game status for clients.
func (that *Game) Status() string {
	if that.IsFinished() {
		return StatusFinished
	}
	return StatusOngoing
}

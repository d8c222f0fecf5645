package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/entity"
	"github.com/JOSongha/tutorial-tic-tac-toe/internal/tictactoe"
)

func TestNewGameSnapshot(t *testing.T) {
	t.Run("Ongoing game exposes the turn and no winner", func(t *testing.T) {
		// Given: a game with one move played
		game := entity.NewGame("123")
		require.NoError(t, game.MakeTurn(4))

		// When: building the snapshot
		snapshot := newGameSnapshot(game, false)

		// Then: derived fields reflect (history, cursor)
		assert.Equal(t, "123", snapshot.ID)
		assert.Equal(t, tictactoe.PlayerX, snapshot.Board[4])
		assert.Equal(t, tictactoe.PlayerO, snapshot.Turn)
		assert.Equal(t, entity.StatusOngoing, snapshot.Status)
		assert.Equal(t, 1, snapshot.Cursor)
		assert.Equal(t, 1, snapshot.Moves)
		assert.Nil(t, snapshot.History)
	})

	t.Run("Finished game hides the turn and names the winner", func(t *testing.T) {
		// Given: a game X won on the left column
		game := entity.NewGame("123")
		for _, cell := range []int{0, 1, 3, 4, 6} {
			require.NoError(t, game.MakeTurn(cell))
		}

		// When: building the snapshot
		snapshot := newGameSnapshot(game, false)

		// Then: winner set, no turn to move
		assert.Equal(t, tictactoe.PlayerX, snapshot.Winner)
		assert.Empty(t, snapshot.Turn)
		assert.Equal(t, entity.StatusFinished, snapshot.Status)
	})

	t.Run("History is included only on request", func(t *testing.T) {
		// Given: a game with two moves
		game := entity.NewGame("123")
		require.NoError(t, game.MakeTurn(0))
		require.NoError(t, game.MakeTurn(1))

		// When: building the snapshot with history
		snapshot := newGameSnapshot(game, true)

		// Then: all three snapshots are there, starting from the empty board
		require.Len(t, snapshot.History, 3)
		assert.Equal(t, entity.Board{}, snapshot.History[0])
	})
}

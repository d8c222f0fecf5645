package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/entity"
	"github.com/JOSongha/tutorial-tic-tac-toe/internal/repository/storage/sqlite"
	"github.com/JOSongha/tutorial-tic-tac-toe/internal/tictactoe"
)

func newArchiveSuite(t *testing.T) (context.Context, ArchiveRepository) {
	t.Helper()

	ctx := context.Background()

	st, err := sqlite.New(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})

	require.NoError(t, st.Init(ctx))

	return ctx, NewArchiveRepository(st.Connection)
}

func TestArchiveRepository_SaveResult(t *testing.T) {
	ctx, archiveRepo := newArchiveSuite(t)

	// Given: a finished game result
	result := &entity.GameResult{
		GameID:     "123",
		Winner:     tictactoe.PlayerX,
		Moves:      5,
		FinishedAt: time.Now().UTC(),
	}

	// When: SaveResult is called
	err := archiveRepo.SaveResult(ctx, result)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestArchiveRepository_CountByWinner(t *testing.T) {
	ctx, archiveRepo := newArchiveSuite(t)

	// Given: two X wins and one draw archived
	results := []*entity.GameResult{
		{GameID: "1", Winner: tictactoe.PlayerX, Moves: 5, FinishedAt: time.Now().UTC()},
		{GameID: "2", Winner: tictactoe.PlayerX, Moves: 7, FinishedAt: time.Now().UTC()},
		{GameID: "3", Winner: tictactoe.PlayerTie, Moves: 9, FinishedAt: time.Now().UTC()},
	}
	for _, result := range results {
		require.NoError(t, archiveRepo.SaveResult(ctx, result))
	}

	// When: counting by winner
	xWins, err := archiveRepo.CountByWinner(ctx, tictactoe.PlayerX)
	require.NoError(t, err)

	ties, err := archiveRepo.CountByWinner(ctx, tictactoe.PlayerTie)
	require.NoError(t, err)

	oWins, err := archiveRepo.CountByWinner(ctx, tictactoe.PlayerO)
	require.NoError(t, err)

	// Then: counts match what was archived
	assert.Equal(t, 2, xWins)
	assert.Equal(t, 1, ties)
	assert.Equal(t, 0, oWins)
}

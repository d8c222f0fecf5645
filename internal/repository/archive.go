package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/entity"
)

// ArchiveRepository - append-only log of finished games. A game is archived
// once per terminal board it reaches; the live game stays in redis so its
// history remains browsable.
type ArchiveRepository interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
	CountByWinner(ctx context.Context, winner string) (int, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) SaveResult(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT INTO game_results (game_id, winner, moves, finished_at) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, result.GameID, result.Winner, result.Moves, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

func (that *dbArchive) CountByWinner(ctx context.Context, winner string) (int, error) {
	query := `SELECT COUNT(*) FROM game_results WHERE winner = ?`

	var count int
	if err := that.conn.QueryRowContext(ctx, query, winner).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count game results: %w", err)
	}

	return count, nil
}

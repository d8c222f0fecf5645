package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/entity"
	"github.com/JOSongha/tutorial-tic-tac-toe/internal/pkg"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type archiveRepo interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
}

// GameManager mediates between transport and the game entities. Each
// session owns exactly one game; a per-session mutex serializes the
// load-mutate-store cycle so the entities themselves stay lock-free.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	gameRepo    gameRepo
	archiveRepo archiveRepo

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, gameRepo gameRepo, archiveRepo archiveRepo) *GameManager {
	return &GameManager{
		logger: logger,

		sessionRepo: sessionRepo,
		gameRepo:    gameRepo,
		archiveRepo: archiveRepo,

		locks: make(map[string]*sync.Mutex),
	}
}

// GetOrCreateSession - resolves a session by ID, creating one when the ID
// is empty or unknown.
func (that *GameManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return that.createSession(ctx)
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// GetOrCreateGame - returns the session's game, creating a fresh one when
// the session has none yet.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock := that.lockSession(sessionID)
	defer unlock()

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.GameID == "" {
		return that.createGame(ctx, session)
	}

	game, err := that.gameRepo.GetByID(ctx, session.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// RestartGame - discards the session's game, history included, and starts
// a fresh one.
func (that *GameManager) RestartGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock := that.lockSession(sessionID)
	defer unlock()

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.GameID != "" {
		if err = that.gameRepo.DeleteByID(ctx, session.GameID); err != nil {
			return nil, fmt.Errorf("failed to delete game: %w", err)
		}
	}

	return that.createGame(ctx, session)
}

// MakeTurn - plays a move on the session's game. The abandoned future
// branch, if any, is dropped by the entity before the move is appended.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	unlock := that.lockSession(sessionID)
	defer unlock()

	game, err := that.gameBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.archiveGame(ctx, game)
	}

	return game, nil
}

// JumpTo - relocates the cursor of the session's game to an earlier move.
func (that *GameManager) JumpTo(ctx context.Context, sessionID string, move int) (*entity.Game, error) {
	unlock := that.lockSession(sessionID)
	defer unlock()

	game, err := that.gameBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = game.JumpTo(move); err != nil {
		return game, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) gameBySession(ctx context.Context, sessionID string) (*entity.Game, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	game, err := that.gameRepo.GetByID(ctx, session.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) createSession(ctx context.Context) (*entity.Session, error) {
	session := &entity.Session{
		ID: pkg.GenerateNewSessionID(),
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *GameManager) createGame(ctx context.Context, session *entity.Session) (*entity.Game, error) {
	newGame := entity.NewGame(pkg.GenerateGameID())

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session.GameID = newGame.ID
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return newGame, nil
}

// archiveGame - records the terminal board in the archive. Archive failures
// are logged, not surfaced: the move itself already succeeded.
func (that *GameManager) archiveGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "archiveGame")

	result := &entity.GameResult{
		GameID:     game.ID,
		Winner:     game.Result(),
		Moves:      game.Cursor,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.archiveRepo.SaveResult(ctx, result); err != nil {
		log.Error("failed to archive game", "gameID", game.ID, "error", err)
		return
	}

	log.Info("game archived", "gameID", game.ID, "winner", result.Winner)
}

func (that *GameManager) lockSession(sessionID string) func() {
	that.locksMutex.Lock()
	lock, ok := that.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[sessionID] = lock
	}
	that.locksMutex.Unlock()

	lock.Lock()

	return lock.Unlock
}

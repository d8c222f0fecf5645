package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/entity"
	"github.com/JOSongha/tutorial-tic-tac-toe/testing/suite"
)

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a session bound to a game
	session := &entity.Session{
		ID:     "abc",
		GameID: "123",
	}

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned, and session is stored
	require.NoError(t, err)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session
		session := &entity.Session{
			ID:     "abc",
			GameID: "123",
		}

		err := sessionRepo.CreateOrUpdate(ctx, session)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedSession, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session should match the saved session
		require.NoError(t, err)
		require.Equal(t, session.ID, retrievedSession.ID)
		require.Equal(t, session.GameID, retrievedSession.GameID)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedSession, err := sessionRepo.GetByID(ctx, "missing")

		// Then: an ErrSessionNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrSessionNotFound, err)
		assert.Empty(t, retrievedSession.ID)
	})
}

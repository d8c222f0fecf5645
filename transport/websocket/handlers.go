package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JOSongha/tutorial-tic-tac-toe/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	var sessionID string
	if payloadReq.Session != nil {
		sessionID = payloadReq.Session.ID
	}

	session, err := that.gameUseCase.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		log.Error("failed to get or create session", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new session")
	}

	payloadResp := Payload{
		Session: session,
	}

	// a reconnecting session picks its game back up, history intact
	if session.GameID != "" {
		game, err := that.gameUseCase.GetOrCreateGame(ctx, session.ID)
		if err != nil {
			log.Error("failed to get game", "gameID", session.GameID, "error", err)
			return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
		}

		payloadResp.Game = newGameSnapshot(game, false)
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected session")

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	game, err := that.gameUseCase.RestartGame(ctx, payloadReq.Session.ID)
	if err != nil {
		log.Error("failed to start a new game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to start a new game")
	}

	payloadResp := Payload{
		Session: payloadReq.Session,
		Game:    newGameSnapshot(game, false),
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("new game started", "gameID", game.ID)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Cell is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payloadReq.Session.ID, *payloadReq.Cell)

	// expected rejections: the game state is untouched, the client just
	// gets told why the click did nothing
	if errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) {
		return that.sendErrorResponse(bufrw, msg.Action, fmt.Sprintf("game %s: %v", game.ID, err))
	}

	if err != nil {
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, fmt.Sprintf("failed to make turn: %v", err))
	}

	payloadResp := Payload{
		Session: payloadReq.Session,
		Game:    newGameSnapshot(game, false),
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("turn made", "gameID", game.ID, "cell", *payloadReq.Cell)

	return nil
}

func (that *Server) handleGameJump(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameJump")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	if payloadReq.Move == nil {
		log.Error("Move is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Move is required")
	}

	game, err := that.gameUseCase.JumpTo(ctx, payloadReq.Session.ID, *payloadReq.Move)

	if errors.Is(err, apperror.ErrInvalidMove) {
		return that.sendErrorResponse(bufrw, msg.Action, fmt.Sprintf("game %s: %v", game.ID, err))
	}

	if err != nil {
		log.Error("failed to jump", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, fmt.Sprintf("failed to jump: %v", err))
	}

	payloadResp := Payload{
		Session: payloadReq.Session,
		Game:    newGameSnapshot(game, false),
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("jumped to move", "gameID", game.ID, "move", *payloadReq.Move)

	return nil
}

func (that *Server) handleGameHistory(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameHistory")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	game, err := that.gameUseCase.GetOrCreateGame(ctx, payloadReq.Session.ID)
	if err != nil {
		log.Error("failed to get game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
	}

	payloadResp := Payload{
		Session: payloadReq.Session,
		Game:    newGameSnapshot(game, true),
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, errorMsg string) error {
	payload := Payload{Error: errorMsg}
	if err := that.sendMessage(bufrw, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

func unmarshalPayload(msg *Message) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type CreateNewGameDTO struct {
	Difficulty int `schema:"difficulty,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Difficulty < 0 || dto.Difficulty > 100 {
		return dto, fmt.Errorf("difficulty must be in [0,100], got %d", dto.Difficulty)
	}
	return dto, nil
}

type MoveDTO struct {
	Row    int   `schema:"row,required"`
	Column int   `schema:"col,required"`
	Value  uint8 `schema:"value"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string  `json:"game_session_id"`
	Puzzle        []uint8 `json:"puzzle"`
	Grid          []uint8 `json:"grid"`
	Difficulty    int     `json:"difficulty"`
	Solved        bool    `json:"solved"`
	UsedSolve     bool    `json:"used_solve"`
	StartedAt     int64   `json:"started_at"`
	EndedAt       *int64  `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, game *sudoku.GameState,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}
	puzzle := game.Puzzle
	squares := game.Squares
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Puzzle:        puzzle[:],
		Grid:          squares[:],
		Difficulty:    game.Difficulty,
		Solved:        game.Solved,
		UsedSolve:     game.UsedSolve,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
		EndedAt:       endedAt,
	}
}

func endedNow() *time.Time {
	now := time.Now().UTC()
	return &now
}

package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Difficulty    int
	Solved        bool
	UsedSolve     bool
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	State         []byte
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateGameSessionParams struct {
	PlayerId *int64
}

func (p CreateGameSessionParams) UpdateArgs(args *pgx.NamedArgs) *pgx.NamedArgs {
	if p.PlayerId != nil {
		(*args)["player_id"] = *p.PlayerId
	}
	return args
}

func (q *Queries) CreateGameSession(
	ctx context.Context, game *sudoku.GameState, params CreateGameSessionParams,
) (*GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"difficulty": game.Difficulty,
		"solved":     game.Solved,
		"used_solve": game.UsedSolve,
		"state":      state,
	}
	params.UpdateArgs(&args)

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, difficulty, solved, used_solve, state
		)
		VALUES (
			@player_id, @difficulty, @solved, @used_solve, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Solved    *bool
	UsedSolve *bool
	EndedAt   *time.Time
	State     *[]byte
}

func (p UpdateGameSessionParams) SetClause() (string, map[string]any) {
	parts := make([]string, 0)
	args := make(map[string]any)

	if p.Solved != nil {
		parts = append(parts, "solved = @solved")
		args["solved"] = *p.Solved
	}
	if p.UsedSolve != nil {
		parts = append(parts, "used_solve = @used_solve")
		args["used_solve"] = *p.UsedSolve
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+" WHERE game_session_id = @game_session_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

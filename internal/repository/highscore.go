package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Highscore struct {
	GameSessionId string  `json:"game_session_id"`
	Username      *string `json:"username"`
	Difficulty    int     `json:"difficulty"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username   *string
	Difficulty *int
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = *f.Difficulty
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores lists solved sessions ordered by playtime, fastest first.
func (q *Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		game_session_id::text,
		username,
		difficulty,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		solved = true
		AND used_solve = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// ConnectWS upgrades to a websocket and plays a session interactively.
// Each text frame may carry several newline-separated commands; the updated
// session is sent back after every frame.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("websocket read", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		for _, command := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			if err := g.executeCommand(game, command); err != nil {
				g.logger.Error("websocket command", "command", command, "error", err)
				c.WriteJSON(wrapError(err))
				return
			}
		}

		updated, err := g.persistSession(r, session, game)
		if err != nil {
			g.logger.Error("unable to update session in db", "error", err)
			return
		}

		if err := c.WriteJSON(NewGameSessionDTO(updated, game)); err != nil {
			g.logger.Error("websocket write", "error", err)
			break
		}
	}
}

func (g GameHandler) persistSession(
	r *http.Request, session *repository.GameSession, game *sudoku.GameState,
) (*repository.GameSession, error) {
	var endedAt *time.Time
	if game.Solved && !session.EndedAt.Valid {
		endedAt = endedNow()
	}

	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}

	return g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, repository.UpdateGameSessionParams{
			Solved:    &game.Solved,
			UsedSolve: &game.UsedSolve,
			EndedAt:   endedAt,
			State:     &state,
		},
	)
}

package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game, err := sudoku.NewGame(dto.Difficulty, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}

	var params repository.CreateGameSessionParams
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		g.logger.Debug("creating player session", "claims", claims)
		params.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if err := game.SetCell(dto.Row, dto.Column, dto.Value); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	g.persistAndReply(w, r, session, game)
}

func (g GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if err := game.Solve(g.rnd); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to solve game", "error", err)
		return
	}

	g.persistAndReply(w, r, session, game)
}

func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *sudoku.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("could not fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := sudoku.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

func (g GameHandler) persistAndReply(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *sudoku.GameState,
) {
	updated, err := g.persistSession(r, session, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(updated, game))
}

func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	var filter repository.HighscoreFilter

	query := r.URL.Query()
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if difficultyStr := query.Get("difficulty"); difficultyStr != "" {
		difficulty, err := strconv.Atoi(difficultyStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.Difficulty = &difficulty
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
)

type Auth struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type Status struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

func (a Auth) Status(w http.ResponseWriter, r *http.Request) {
	var status *Status
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if ok {
		status = &Status{
			LoggedIn: true,
			Player:   &PlayerInfo{claims.PlayerId, claims.Username},
		}
		token, err := a.jwt.Sign(claims)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			a.logger.Error("unable to tokenize checked claim", "error", err)
			return
		}
		a.cookies.Refresh(w, token)
	} else {
		status = &Status{LoggedIn: false, Player: nil}
		a.cookies.Clear(w)
	}

	sendJSONOrLog(w, a.logger, status)
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrBadCredentials     = fmt.Errorf("invalid username or password")
)

func (a Auth) parseCredentials(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return "", nil, false
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadAuthBody))
		return "", nil, false
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadPasswordTooLong))
		return "", nil, false
	}

	return username, passwordBytes, true
}

func (a Auth) login(w http.ResponseWriter, player *repository.Player) bool {
	claims := config.NewPlayerClaims(player.PlayerId, player.Username)
	token, err := a.jwt.Sign(claims)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to sign claims", "error", err)
		return false
	}
	if err := a.cookies.Refresh(w, token); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to set cookies", "error", err)
		return false
	}
	return true
}

func (a Auth) Register(w http.ResponseWriter, r *http.Request) {
	username, passwordBytes, ok := a.parseCredentials(w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.MinCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to hash password", "error", err)
		return
	}

	player, err := a.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, a.logger, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to create player", "error", err)
		return
	}

	if a.login(w, player) {
		sendJSONOrLog(w, a.logger, PlayerInfo{player.PlayerId, player.Username})
	}
}

func (a Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, passwordBytes, ok := a.parseCredentials(w, r)
	if !ok {
		return
	}

	player, err := a.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadCredentials))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to fetch player", "error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(player.PasswordHash, passwordBytes); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			w.WriteHeader(http.StatusUnauthorized)
			sendJSONOrLog(w, a.logger, wrapError(ErrBadCredentials))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("bcrypt compare error", "error", err)
		return
	}

	if a.login(w, player) {
		sendJSONOrLog(w, a.logger, PlayerInfo{player.PlayerId, player.Username})
	}
}

func (a Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

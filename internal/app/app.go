package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/database"
	"github.com/vancomm/sudoku-server/internal/middleware"
)

type App struct {
	logger     *slog.Logger
	router     *http.ServeMux
	db         *pgxpool.Pool
	jwt        *config.JWT
	cookies    *config.Cookies
	ws         *config.WebSocket
	migrations fs.FS
}

func New(logger *slog.Logger, migrations fs.FS) *App {
	return &App{
		logger:     logger,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

// Setup connects to the database, runs migrations and wires routes. It must
// be called before Handler.
func (a *App) Setup(ctx context.Context) error {
	db, _, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}
	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return err
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	return nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Auth(a.cookies),
		middleware.Logging(a.logger),
	)
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

package main

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sudoku-server/internal/app"
	"github.com/vancomm/sudoku-server/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	a := app.New(logger, migrations)
	if err := a.Setup(ctx); err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}
	defer a.Close()

	addr := ":" + config.Port()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	logger.Info("ready to serve", slog.String("addr", addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("exit reason", slog.Any("error", err))
		os.Exit(1)
	}
}

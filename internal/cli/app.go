// Package cli implements the interactive front-end of the time keeper: a
// small REPL that drives the registry, attendance, and report services. The
// original application's Tk dialogs map onto prompt sequences here.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/clinicops/timekeeper/internal/config"
	"github.com/clinicops/timekeeper/internal/logging"
	"github.com/clinicops/timekeeper/internal/services"
	"github.com/clinicops/timekeeper/internal/store"
	"golang.org/x/term"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	store      *store.Store
	logger     logging.Logger
	registry   services.Registry
	attendance services.Attendance
	report     services.Report

	reader *bufio.Reader
	out    io.Writer

	// interactive is true when stdin is a terminal; prompts are suppressed
	// for piped input so scripted runs stay clean.
	interactive bool
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	st, err := store.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	registry := services.NewRegistry(st.DB(), logger)
	attendance := services.NewAttendance(st.DB(), registry, logger)
	report := services.NewReport(st.DB(), logger, nil)

	return &App{
		config:      c,
		store:       st,
		logger:      logger,
		registry:    registry,
		attendance:  attendance,
		report:      report,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(ctx); err != nil {
			a.logger.Error(ctx, "error closing database", "error", err)
		}
	}()
	return a.Root(ctx)
}

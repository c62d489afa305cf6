// Package cli implements the interactive MindSync terminal application:
// a small REPL over the session service and the two simulated analyzers.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/analysis"
	"github.com/dhairyaaprajapati/mindsync/internal/config"
	"github.com/dhairyaaprajapati/mindsync/internal/logging"
	"github.com/dhairyaaprajapati/mindsync/internal/models"
	"github.com/dhairyaaprajapati/mindsync/internal/services"
	"github.com/dhairyaaprajapati/mindsync/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	sessions services.SessionManager
	chat     *analysis.ChatAnalyzer
	voice    *analysis.VoiceAnalyzer
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	a := &App{
		config:   c,
		db:       db,
		sessions: services.NewSessionManager(ctx, db, log),
		chat:     analysis.NewChatAnalyzer(rnd, c.ChatDelay),
		voice:    analysis.NewVoiceAnalyzer(rnd, c.VoiceDelay),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.sessions.Subscribe(a.onSessionChange)
	return a, nil
}

// onSessionChange announces sign-in state transitions published by the
// session service.
func (a *App) onSessionChange(s *models.Session) {
	if s != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", s.Name, s.Email)
		return
	}
	fmt.Fprintln(a.out, "Signed out")
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.CurrentUser() != nil
}

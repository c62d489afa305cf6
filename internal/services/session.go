// Package services contains the application services for MindSync.
// This file defines the session service: the authentication state machine
// over the local record store, and appending analysis results to the
// signed-in user's history.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhairyaaprajapati/mindsync/internal/common"
	"github.com/dhairyaaprajapati/mindsync/internal/dbx"
	"github.com/dhairyaaprajapati/mindsync/internal/logging"
	"github.com/dhairyaaprajapati/mindsync/internal/models"
	"github.com/dhairyaaprajapati/mindsync/internal/store"
)

// SessionManager is the authentication API consumed by the UI.
//
// Contract:
//   - Login/Signup return (false, nil) for the expected failures (wrong
//     credentials, duplicate email). An error is returned only for storage
//     faults. Unknown email and wrong password are indistinguishable.
//   - Logout is idempotent.
//   - CurrentUser is a pure read of the cached session, nil when signed out.
//   - AppendAnalysis requires an active session and keeps the session and
//     the directory consistent.
//   - Subscribe registers a callback invoked after every session change,
//     with the new session (nil after logout).
type SessionManager interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Signup(ctx context.Context, email, password, name string) (bool, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.Session
	AppendAnalysis(ctx context.Context, entry models.AnalysisEntry) error
	Subscribe(fn func(*models.Session))
}

// sessionService is the concrete SessionManager backed by the local SQL
// database. It is the sole writer to the record store; the cached session
// is the source of truth between calls.
type sessionService struct {
	db      *sql.DB
	log     logging.Logger
	current *models.Session
	subs    []func(*models.Session)
	now     func() time.Time
}

// NewSessionManager constructs a SessionManager bound to db and rehydrates
// the session persisted by a previous run. Storage faults during
// rehydration are logged and the manager starts signed out.
func NewSessionManager(ctx context.Context, db *sql.DB, log logging.Logger) SessionManager {
	s := &sessionService{db: db, log: log, now: time.Now}

	session, err := store.New(db).LoadSession(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to restore session, starting signed out", "error", err)
		return s
	}
	s.current = session
	return s
}

// Subscribe registers fn to be called after every session change.
func (s *sessionService) Subscribe(fn func(*models.Session)) {
	s.subs = append(s.subs, fn)
}

func (s *sessionService) publish() {
	for _, fn := range s.subs {
		fn(s.current)
	}
}

// loadDirectory reads the user directory, recovering from a corrupt blob by
// treating it as empty so a damaged store never takes the whole app down.
func (s *sessionService) loadDirectory(ctx context.Context, db dbx.DBTX) ([]models.UserRecord, error) {
	records, err := store.New(db).LoadDirectory(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStorageCorrupt) {
			s.log.Warn(ctx, "user directory is corrupt, treating as empty", "error", err)
			return []models.UserRecord{}, nil
		}
		return nil, err
	}
	return records, nil
}

// Login verifies email/password against the directory. The email comparison
// is exact and case-sensitive, matching the original product's behavior.
func (s *sessionService) Login(ctx context.Context, email, password string) (bool, error) {
	records, err := s.loadDirectory(ctx, s.db)
	if err != nil {
		return false, err
	}

	for i := range records {
		if records[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(records[i].PasswordHash), []byte(password)) != nil {
			// Uniform failure: the caller cannot tell a wrong password
			// from an unknown email.
			return false, nil
		}

		session := records[i].SessionView()
		if err := store.New(s.db).SaveSession(ctx, session); err != nil {
			return false, err
		}

		s.current = session
		s.log.Info(ctx, "user logged in", "id", session.ID)
		s.publish()
		return true, nil
	}

	return false, nil
}

// Signup registers a new account and activates its session. The email must
// not already exist in the directory.
func (s *sessionService) Signup(ctx context.Context, email, password, name string) (bool, error) {
	records, err := s.loadDirectory(ctx, s.db)
	if err != nil {
		return false, err
	}

	for i := range records {
		if records[i].Email == email {
			return false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	record := models.UserRecord{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Analyses:     []models.AnalysisEntry{},
	}
	records = append(records, record)
	session := record.SessionView()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.New(tx)
		if err := st.SaveDirectory(ctx, records); err != nil {
			return err
		}
		return st.SaveSession(ctx, session)
	})
	if err != nil {
		return false, err
	}

	s.current = session
	s.log.Info(ctx, "user signed up", "id", session.ID)
	s.publish()
	return true, nil
}

// Logout clears the persisted and cached session. Calling it while signed
// out is a no-op.
func (s *sessionService) Logout(ctx context.Context) error {
	if s.current == nil {
		return nil
	}

	if err := store.New(s.db).ClearSession(ctx); err != nil {
		return err
	}

	s.log.Info(ctx, "user logged out", "id", s.current.ID)
	s.current = nil
	s.publish()
	return nil
}

// CurrentUser returns the cached session, or nil when signed out.
func (s *sessionService) CurrentUser() *models.Session {
	return s.current
}

// AppendAnalysis stamps entry with the current time and appends it to the
// signed-in user's history. The session blob and the directory blob are
// updated in one transaction, so after a successful call both reflect the
// same history.
//
// Returns common.ErrNotAuthenticated when signed out and
// common.ErrRecordNotFound when the directory no longer contains the
// session's record; in both cases nothing is written.
func (s *sessionService) AppendAnalysis(ctx context.Context, entry models.AnalysisEntry) error {
	if s.current == nil {
		return common.ErrNotAuthenticated
	}

	entry.RecordedAt = s.now().UTC()

	// Build a fresh history instead of mutating the cached one, so the
	// cache stays untouched if persisting fails.
	history := make([]models.AnalysisEntry, 0, len(s.current.Analyses)+1)
	history = append(history, s.current.Analyses...)
	history = append(history, entry)

	session := *s.current
	session.Analyses = history

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.New(tx)

		records, err := st.LoadDirectory(ctx)
		if err != nil {
			return err
		}

		idx := -1
		for i := range records {
			if records[i].ID == session.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("%w: user %s", common.ErrRecordNotFound, session.ID)
		}

		records[idx].Analyses = history
		if err := st.SaveDirectory(ctx, records); err != nil {
			return err
		}
		return st.SaveSession(ctx, &session)
	})
	if err != nil {
		return err
	}

	s.current = &session
	s.publish()
	return nil
}

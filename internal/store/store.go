// Package store implements the Record Store: JSON persistence of the user
// directory and the active session on top of the key/value repository.
//
// The two storage keys are the same application-scoped constants the
// original product used for its browser storage.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dhairyaaprajapati/mindsync/internal/common"
	"github.com/dhairyaaprajapati/mindsync/internal/dbx"
	"github.com/dhairyaaprajapati/mindsync/internal/models"
	"github.com/dhairyaaprajapati/mindsync/internal/repositories/kv"
)

const (
	// DirectoryKey holds the serialized sequence of user records.
	DirectoryKey = "mindsynk_users"
	// SessionKey holds the serialized session of the signed-in user, if any.
	SessionKey = "mindsynk_user"
)

// Store persists the user directory and the active session. It is bound to
// a DBTX, so the same code runs against a plain connection or inside a
// transaction.
type Store struct {
	kv kv.Repository
}

// New returns a Store over the given database handle.
func New(db dbx.DBTX) *Store {
	return &Store{kv: kv.NewSQLiteRepository(db)}
}

// LoadDirectory returns the full user directory in insertion order.
// An absent blob yields an empty directory. Malformed stored bytes are
// reported as common.ErrStorageCorrupt.
func (s *Store) LoadDirectory(ctx context.Context) ([]models.UserRecord, error) {
	data, err := s.kv.Get(ctx, DirectoryKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.UserRecord{}, nil
	}

	var records []models.UserRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: directory: %v", common.ErrStorageCorrupt, err)
	}
	return records, nil
}

// SaveDirectory replaces the persisted directory with records.
func (s *Store) SaveDirectory(ctx context.Context, records []models.UserRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize directory: %w", err)
	}
	return s.kv.Set(ctx, DirectoryKey, data)
}

// LoadSession returns the persisted session, or nil if none is stored.
// Malformed stored bytes are reported as common.ErrStorageCorrupt.
func (s *Store) LoadSession(ctx context.Context) (*models.Session, error) {
	data, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: session: %v", common.ErrStorageCorrupt, err)
	}
	return &session, nil
}

// SaveSession persists session as the active one, replacing any prior value.
func (s *Store) SaveSession(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return s.kv.Set(ctx, SessionKey, data)
}

// ClearSession removes the persisted session. Clearing an absent session
// is a no-op.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.kv.Delete(ctx, SessionKey)
}

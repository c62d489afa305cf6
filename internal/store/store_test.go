package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/common"
	"github.com/dhairyaaprajapati/mindsync/internal/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// a single in-memory connection must not be reopened
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func seedBlob(t *testing.T, db *sql.DB, key string, value []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO storage(key, value) VALUES (?, ?)`, key, value)
	require.NoError(t, err)
}

func TestLoadDirectory_EmptyWhenAbsent(t *testing.T) {
	s := New(setupDB(t))

	records, err := s.LoadDirectory(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDirectory_RoundTrip(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	recorded := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dir := []models.UserRecord{
		{
			ID:           "1",
			Email:        "a@x.com",
			Name:         "Ann",
			PasswordHash: "hash-a",
			Analyses: []models.AnalysisEntry{
				{
					Kind:           models.AnalysisKindChat,
					RiskLevel:      models.RiskLow,
					Summary:        "calm session",
					Recommendation: "keep it up",
					RecordedAt:     recorded,
				},
			},
		},
		{ID: "2", Email: "b@x.com", Name: "Bob", PasswordHash: "hash-b", Analyses: []models.AnalysisEntry{}},
	}

	require.NoError(t, s.SaveDirectory(ctx, dir))

	got, err := s.LoadDirectory(ctx)
	require.NoError(t, err)
	require.Equal(t, dir, got)
}

func TestSaveDirectory_ReplacesPriorContents(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SaveDirectory(ctx, []models.UserRecord{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, s.SaveDirectory(ctx, []models.UserRecord{{ID: "3"}}))

	got, err := s.LoadDirectory(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "3", got[0].ID)
}

func TestLoadDirectory_CorruptBlob(t *testing.T) {
	db := setupDB(t)
	seedBlob(t, db, DirectoryKey, []byte(`{not json`))

	_, err := New(db).LoadDirectory(context.Background())
	require.ErrorIs(t, err, common.ErrStorageCorrupt)
}

func TestLoadSession_NilWhenAbsent(t *testing.T) {
	s := New(setupDB(t))

	session, err := s.LoadSession(context.Background())
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestSession_RoundTrip(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	session := &models.Session{ID: "1", Email: "a@x.com", Name: "Ann", Analyses: []models.AnalysisEntry{}}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.LoadSession(ctx)
	require.NoError(t, err)
	require.Equal(t, session, got)
}

func TestLoadSession_CorruptBlob(t *testing.T) {
	db := setupDB(t)
	seedBlob(t, db, SessionKey, []byte(`[`))

	_, err := New(db).LoadSession(context.Background())
	require.ErrorIs(t, err, common.ErrStorageCorrupt)
}

func TestClearSession_RemovesAndIsIdempotent(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &models.Session{ID: "1"}))
	require.NoError(t, s.ClearSession(ctx))

	session, err := s.LoadSession(ctx)
	require.NoError(t, err)
	require.Nil(t, session)

	require.NoError(t, s.ClearSession(ctx))
}

func TestOpenDatabase_CreatesSchema(t *testing.T) {
	db, err := OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO storage(key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)
}

// Package models defines the durable account record, the session view
// exposed to the UI, and the analysis entries appended to a user's history.
package models

import "time"

// RiskLevel classifies an analysis outcome.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// AnalysisKind identifies which analyzer produced an entry.
type AnalysisKind string

const (
	AnalysisKindChat  AnalysisKind = "chat"
	AnalysisKindVoice AnalysisKind = "voice"
)

// AnalysisEntry is one timestamped result appended to a user's history.
// The shape is closed: every field is required, RecordedAt is assigned
// at append time.
type AnalysisEntry struct {
	Kind           AnalysisKind `json:"kind"`
	RiskLevel      RiskLevel    `json:"riskLevel"`
	Summary        string       `json:"summary"`
	Recommendation string       `json:"recommendation"`
	RecordedAt     time.Time    `json:"recordedAt"`
}

// UserRecord is the durable representation of one registered account.
// PasswordHash is a bcrypt hash; the plaintext password is never stored.
type UserRecord struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"passwordHash"`
	Analyses     []AnalysisEntry `json:"analyses"`
}

// Session is the in-memory, UI-visible representation of the signed-in user.
// It deliberately has no credential field at all, so a session can never
// leak the password hash through serialization.
type Session struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Analyses []AnalysisEntry `json:"analyses"`
}

// SessionView derives the credential-free session representation of u.
// The history slice is copied so later appends do not alias the record.
func (u *UserRecord) SessionView() *Session {
	analyses := make([]AnalysisEntry, len(u.Analyses))
	copy(analyses, u.Analyses)
	return &Session{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Analyses: analyses,
	}
}

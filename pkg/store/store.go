// Package store persists refinement sessions, document versions,
// reviews, iteration records and progress events. Two implementations
// exist: the ent-backed PostgreSQL store used by the server, and an
// in-memory store for the embedded library mode and tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

var (
	// ErrNotFound is returned when a session, version or review does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict is returned when a saved version is not the
	// current maximum plus one, or an iteration record's index is not
	// dense.
	ErrVersionConflict = errors.New("version conflict")

	// ErrNoPending is returned by ClaimNextPending when no session is
	// waiting.
	ErrNoPending = errors.New("no pending session")

	// ErrAlreadyExists is returned when creating a session whose ID is
	// taken.
	ErrAlreadyExists = errors.New("already exists")
)

// ListFilter narrows ListSessions. Zero value lists everything,
// newest first.
type ListFilter struct {
	Status models.Status // empty means any
	Limit  int           // 0 means no limit
	Offset int
}

// IterationCommit is the unit of atomicity for one finished iteration:
// its reviews, its record, the moderator's output version (nil when
// the iteration stopped without a rewrite) and the session bookkeeping
// that goes with them. Either all of it lands or none of it does.
type IterationCommit struct {
	Reviews          []*models.Review
	Record           models.IterationRecord
	NewVersion       *models.DocumentVersion
	CurrentIteration int
	Tokens           map[string]models.TokenUsage
}

// Store is the persistence boundary for refinement sessions.
type Store interface {
	// CreateSession inserts a new session. The initial document
	// version (version 1) is saved separately via SaveVersion.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession returns a session by ID.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ListSessions returns summaries matching the filter, newest
	// first.
	ListSessions(ctx context.Context, filter ListFilter) ([]*models.SessionListEntry, error)

	// UpdateSession persists the session's mutable fields (status,
	// panel, counters, outcome, tokens).
	UpdateSession(ctx context.Context, session *models.Session) error

	// DeleteSession removes a session and everything hanging off it.
	DeleteSession(ctx context.Context, sessionID string) error

	// SaveVersion appends a document version. The version number must
	// be exactly the current maximum plus one (1 for the first);
	// anything else is ErrVersionConflict. Versions are immutable once
	// saved.
	SaveVersion(ctx context.Context, sessionID string, version *models.DocumentVersion) error

	// GetVersion returns one document version.
	GetVersion(ctx context.Context, sessionID string, version int) (*models.DocumentVersion, error)

	// LatestVersion returns the highest-numbered version.
	LatestVersion(ctx context.Context, sessionID string) (*models.DocumentVersion, error)

	// ListVersions returns all versions in ascending order.
	ListVersions(ctx context.Context, sessionID string) ([]*models.DocumentVersion, error)

	// ListReviews returns a session's reviews. iteration 0 means all
	// iterations, ordered by iteration then reviewer name.
	ListReviews(ctx context.Context, sessionID string, iteration int) ([]*models.Review, error)

	// ListIterations returns the session's iteration records in
	// order.
	ListIterations(ctx context.Context, sessionID string) ([]models.IterationRecord, error)

	// CommitIteration atomically persists one finished iteration.
	CommitIteration(ctx context.Context, sessionID string, commit IterationCommit) error

	// SaveReport persists the terminal convergence report. Written once,
	// when the session completes or a continuation re-completes it.
	SaveReport(ctx context.Context, sessionID string, report *models.ConvergenceReport) error

	// GetReport returns the persisted convergence report, or ErrNotFound
	// when the session never completed.
	GetReport(ctx context.Context, sessionID string) (*models.ConvergenceReport, error)

	// ClaimNextPending atomically claims the oldest pending session
	// for podID, moving it to planning. Returns ErrNoPending when the
	// queue is empty.
	ClaimNextPending(ctx context.Context, podID string) (*models.Session, error)

	// Heartbeat refreshes the claim on a running session.
	Heartbeat(ctx context.Context, sessionID, podID string) error

	// RecoverOrphans fails sessions whose worker stopped heartbeating
	// before cutoff and returns their IDs.
	RecoverOrphans(ctx context.Context, cutoff time.Time) ([]string, error)

	// AppendEvent stores a progress event for catchup. Implements
	// events.EventSink.
	AppendEvent(ctx context.Context, sessionID, channel string, payload []byte) (int, error)

	// GetCatchupEvents returns persisted events on a channel with ID
	// greater than sinceID, oldest first. Implements
	// events.CatchupQuerier.
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error)
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

// MemoryStore is an in-memory Store. It backs the embedded library
// mode and tests; the server uses the ent store. All methods are safe
// for concurrent use. Sessions are deep-copied on the way in and out
// so callers cannot mutate stored state by aliasing.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*models.Session
	versions    map[string][]*models.DocumentVersion
	reviews     map[string][]*models.Review
	iterations  map[string][]models.IterationRecord
	reports     map[string]*models.ConvergenceReport
	eventsByCh  map[string][]storedEvent
	nextEventID int
	// creation order tiebreak for equal timestamps
	order []string
}

type storedEvent struct {
	id        int
	sessionID string
	payload   []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*models.Session),
		versions:   make(map[string][]*models.DocumentVersion),
		reviews:    make(map[string][]*models.Review),
		iterations: make(map[string][]models.IterationRecord),
		reports:    make(map[string]*models.ConvergenceReport),
		eventsByCh: make(map[string][]storedEvent),
	}
}

func copySession(s *models.Session) *models.Session {
	out := *s
	if s.EndedAt != nil {
		t := *s.EndedAt
		out.EndedAt = &t
	}
	out.Participants = append([]models.RoleSpec(nil), s.Participants...)
	if s.Tokens != nil {
		out.Tokens = make(map[string]models.TokenUsage, len(s.Tokens))
		for k, v := range s.Tokens {
			out.Tokens[k] = v
		}
	}
	if s.Metadata != nil {
		out.Metadata = make(map[string]any, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

func copyReview(r *models.Review) *models.Review {
	out := *r
	out.Issues = append([]models.Issue(nil), r.Issues...)
	return &out
}

func copyReport(r *models.ConvergenceReport) *models.ConvergenceReport {
	out := *r
	out.History = append([]models.IterationRecord(nil), r.History...)
	out.Participants = append([]models.RoleSpec(nil), r.Participants...)
	if r.Tokens != nil {
		out.Tokens = make(map[string]models.TokenUsage, len(r.Tokens))
		for k, v := range r.Tokens {
			out.Tokens[k] = v
		}
	}
	return &out
}

// CreateSession inserts a new session.
func (m *MemoryStore) CreateSession(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.ID]; ok {
		return fmt.Errorf("session %s: %w", session.ID, ErrAlreadyExists)
	}
	m.sessions[session.ID] = copySession(session)
	m.order = append(m.order, session.ID)
	return nil
}

// GetSession returns a session by ID.
func (m *MemoryStore) GetSession(_ context.Context, sessionID string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return copySession(s), nil
}

// ListSessions returns summaries matching the filter, newest first.
func (m *MemoryStore) ListSessions(_ context.Context, filter ListFilter) ([]*models.SessionListEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*models.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(all) {
			all = nil
		} else {
			all = all[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}

	out := make([]*models.SessionListEntry, 0, len(all))
	for _, s := range all {
		entry := &models.SessionListEntry{
			SessionID:        s.ID,
			Title:            s.Title,
			DocumentType:     s.DocumentType,
			Status:           s.Status,
			CurrentIteration: s.CurrentIteration,
			CreatedAt:        s.CreatedAt,
			FinalVersion:     s.FinalVersion,
			StoppedBy:        s.StoppedBy,
		}
		out = append(out, entry)
	}
	return out, nil
}

// UpdateSession persists the session's mutable fields.
func (m *MemoryStore) UpdateSession(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.ID]; !ok {
		return fmt.Errorf("session %s: %w", session.ID, ErrNotFound)
	}
	m.sessions[session.ID] = copySession(session)
	return nil
}

// DeleteSession removes a session and everything hanging off it.
func (m *MemoryStore) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	delete(m.sessions, sessionID)
	delete(m.versions, sessionID)
	delete(m.reviews, sessionID)
	delete(m.iterations, sessionID)
	delete(m.reports, sessionID)
	channel := events.SessionChannel(sessionID)
	delete(m.eventsByCh, channel)
	for i, id := range m.order {
		if id == sessionID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// SaveVersion appends a document version, enforcing the dense
// max-plus-one sequence.
func (m *MemoryStore) SaveVersion(_ context.Context, sessionID string, version *models.DocumentVersion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveVersionLocked(sessionID, version)
}

func (m *MemoryStore) saveVersionLocked(sessionID string, version *models.DocumentVersion) error {
	if _, ok := m.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	want := len(m.versions[sessionID]) + 1
	if version.Version != want {
		return fmt.Errorf("version %d for session %s (next is %d): %w",
			version.Version, sessionID, want, ErrVersionConflict)
	}
	v := *version
	m.versions[sessionID] = append(m.versions[sessionID], &v)
	return nil
}

// GetVersion returns one document version.
func (m *MemoryStore) GetVersion(_ context.Context, sessionID string, version int) (*models.DocumentVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	vs := m.versions[sessionID]
	if version < 1 || version > len(vs) {
		return nil, fmt.Errorf("version %d of session %s: %w", version, sessionID, ErrNotFound)
	}
	v := *vs[version-1]
	return &v, nil
}

// LatestVersion returns the highest-numbered version.
func (m *MemoryStore) LatestVersion(_ context.Context, sessionID string) (*models.DocumentVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	vs := m.versions[sessionID]
	if len(vs) == 0 {
		return nil, fmt.Errorf("session %s has no versions: %w", sessionID, ErrNotFound)
	}
	v := *vs[len(vs)-1]
	return &v, nil
}

// ListVersions returns all versions in ascending order.
func (m *MemoryStore) ListVersions(_ context.Context, sessionID string) ([]*models.DocumentVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	out := make([]*models.DocumentVersion, 0, len(m.versions[sessionID]))
	for _, v := range m.versions[sessionID] {
		c := *v
		out = append(out, &c)
	}
	return out, nil
}

// ListReviews returns a session's reviews; iteration 0 means all.
func (m *MemoryStore) ListReviews(_ context.Context, sessionID string, iteration int) ([]*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	var out []*models.Review
	for _, r := range m.reviews[sessionID] {
		if iteration != 0 && r.Iteration != iteration {
			continue
		}
		out = append(out, copyReview(r))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Iteration != out[j].Iteration {
			return out[i].Iteration < out[j].Iteration
		}
		return out[i].ReviewerName < out[j].ReviewerName
	})
	return out, nil
}

// ListIterations returns the session's iteration records in order.
func (m *MemoryStore) ListIterations(_ context.Context, sessionID string) ([]models.IterationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return append([]models.IterationRecord(nil), m.iterations[sessionID]...), nil
}

// CommitIteration atomically persists one finished iteration.
func (m *MemoryStore) CommitIteration(_ context.Context, sessionID string, commit IterationCommit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	wantIter := len(m.iterations[sessionID]) + 1
	if commit.Record.IterationIndex != wantIter {
		return fmt.Errorf("iteration %d for session %s (next is %d): %w",
			commit.Record.IterationIndex, sessionID, wantIter, ErrVersionConflict)
	}
	// Validate the version append before touching anything.
	if commit.NewVersion != nil {
		want := len(m.versions[sessionID]) + 1
		if commit.NewVersion.Version != want {
			return fmt.Errorf("version %d for session %s (next is %d): %w",
				commit.NewVersion.Version, sessionID, want, ErrVersionConflict)
		}
	}

	for _, r := range commit.Reviews {
		m.reviews[sessionID] = append(m.reviews[sessionID], copyReview(r))
	}
	m.iterations[sessionID] = append(m.iterations[sessionID], commit.Record)
	if commit.NewVersion != nil {
		v := *commit.NewVersion
		m.versions[sessionID] = append(m.versions[sessionID], &v)
	}
	s.CurrentIteration = commit.CurrentIteration
	if commit.Tokens != nil {
		s.Tokens = make(map[string]models.TokenUsage, len(commit.Tokens))
		for k, v := range commit.Tokens {
			s.Tokens[k] = v
		}
	}
	return nil
}

// SaveReport persists the terminal convergence report, replacing any
// prior one (a continuation re-completes the session with a new report).
func (m *MemoryStore) SaveReport(_ context.Context, sessionID string, report *models.ConvergenceReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	m.reports[sessionID] = copyReport(report)
	return nil
}

// GetReport returns the persisted convergence report.
func (m *MemoryStore) GetReport(_ context.Context, sessionID string) (*models.ConvergenceReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	r, ok := m.reports[sessionID]
	if !ok {
		return nil, fmt.Errorf("report for session %s: %w", sessionID, ErrNotFound)
	}
	return copyReport(r), nil
}

// ClaimNextPending claims the oldest pending session for podID.
func (m *MemoryStore) ClaimNextPending(_ context.Context, podID string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		s := m.sessions[id]
		if s == nil || s.Status != models.StatusPending {
			continue
		}
		s.Status = models.StatusPlanning
		s.PodID = podID
		now := time.Now().UTC()
		s.StartedAt = &now
		s.LastHeartbeatAt = &now
		return copySession(s), nil
	}
	return nil, ErrNoPending
}

// Heartbeat refreshes the claim on a running session.
func (m *MemoryStore) Heartbeat(_ context.Context, sessionID, podID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if s.PodID != podID {
		return fmt.Errorf("session %s claimed by %s: %w", sessionID, s.PodID, ErrNotFound)
	}
	now := time.Now().UTC()
	s.LastHeartbeatAt = &now
	return nil
}

// RecoverOrphans fails sessions whose worker stopped heartbeating.
func (m *MemoryStore) RecoverOrphans(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var recovered []string
	for _, s := range m.sessions {
		if s.Status != models.StatusPlanning && s.Status != models.StatusRunning {
			continue
		}
		if s.LastHeartbeatAt == nil || s.LastHeartbeatAt.After(cutoff) {
			continue
		}
		s.Status = models.StatusFailed
		s.ErrorMessage = "worker stopped heartbeating, session orphaned"
		now := time.Now().UTC()
		s.EndedAt = &now
		recovered = append(recovered, s.ID)
	}
	sort.Strings(recovered)
	return recovered, nil
}

// AppendEvent stores a progress event for catchup.
func (m *MemoryStore) AppendEvent(_ context.Context, sessionID, channel string, payload []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextEventID++
	m.eventsByCh[channel] = append(m.eventsByCh[channel], storedEvent{
		id:        m.nextEventID,
		sessionID: sessionID,
		payload:   append([]byte(nil), payload...),
	})
	return m.nextEventID, nil
}

// GetCatchupEvents returns persisted events after sinceID, oldest
// first.
func (m *MemoryStore) GetCatchupEvents(_ context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []events.CatchupEvent
	for _, ev := range m.eventsByCh[channel] {
		if ev.id <= sinceID {
			continue
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(ev.payload, &payload); err != nil {
			return nil, fmt.Errorf("corrupt stored event %d: %w", ev.id, err)
		}
		out = append(out, events.CatchupEvent{ID: ev.id, Payload: payload})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

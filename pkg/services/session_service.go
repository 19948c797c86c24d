package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// Canceller requests cooperative cancellation of a live session driver.
// Returns false when no driver for the session is running on this pod.
type Canceller interface {
	CancelSession(sessionID string) bool
}

// SessionService manages refinement session lifecycle: creation,
// continuation, cancellation, deletion and artifact retrieval.
type SessionService struct {
	store     store.Store
	publisher *events.Publisher
	defaults  *config.SessionDefaults
	canceller Canceller
}

// NewSessionService creates a new SessionService.
func NewSessionService(st store.Store, publisher *events.Publisher, defaults *config.SessionDefaults) *SessionService {
	if defaults == nil {
		defaults = config.DefaultSessionDefaults()
	}
	return &SessionService{store: st, publisher: publisher, defaults: defaults}
}

// SetCanceller wires the worker pool's cancellation registry. Optional;
// without it Cancel only handles sessions with no live driver.
func (s *SessionService) SetCanceller(c Canceller) {
	s.canceller = c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Create validates a start request, persists the session in Pending
// with its initial document version, and announces it on the event
// stream. Validation failures are reported synchronously; the session
// never enters the queue.
func (s *SessionService) Create(ctx context.Context, req models.StartRequest) (*models.Session, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if !models.ValidPreset(req.Preset) {
		return nil, NewValidationError("preset", fmt.Sprintf("unknown preset %q", req.Preset))
	}
	switch req.ModelStrategy {
	case "", models.ModelStrategyUniform, models.ModelStrategyDiverse:
	default:
		return nil, NewValidationError("model_strategy", fmt.Sprintf("unknown strategy %q", req.ModelStrategy))
	}

	maxIterations := req.MaxIterations
	if maxIterations == 0 {
		maxIterations = s.defaults.MaxIterations
	}
	if maxIterations < 1 || maxIterations > s.defaults.MaxIterationsCap {
		return nil, NewValidationError("max_iterations",
			fmt.Sprintf("must be between 1 and %d", s.defaults.MaxIterationsCap))
	}

	numParticipants := req.NumParticipants
	if numParticipants == 0 {
		numParticipants = s.defaults.NumParticipants
	}
	numParticipants = clamp(numParticipants, models.MinParticipants, models.MaxParticipants)

	deltaThreshold := req.DeltaThreshold
	if deltaThreshold == 0 {
		deltaThreshold = s.defaults.DeltaThreshold
	}
	if deltaThreshold < 0 || deltaThreshold > 1 {
		return nil, NewValidationError("delta_threshold", "must be between 0 and 1")
	}

	documentType := req.DocumentType
	if documentType == "" {
		documentType = s.defaults.DocumentType
	}

	stopOnNoHigh := true
	if s.defaults.StopOnNoHighIssues != nil {
		stopOnNoHigh = *s.defaults.StopOnNoHighIssues
	}
	if req.StopOnNoHighIssues != nil {
		stopOnNoHigh = *req.StopOnNoHighIssues
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Goal:         req.Goal,
		DocumentType: documentType,
		Config: models.SessionConfig{
			MaxIterations:      maxIterations,
			DeltaThreshold:     deltaThreshold,
			StopOnNoHighIssues: stopOnNoHigh,
			ForceMaxIterations: req.ForceMaxIterations,
			NumParticipants:    numParticipants,
			Preset:             req.Preset,
			ParticipantStyle:   req.ParticipantStyle,
			Model:              req.Model,
			ModelStrategy:      req.ModelStrategy,
		},
		Status:    models.StatusPending,
		CreatedAt: now,
		Metadata:  req.Metadata,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	initial := &models.DocumentVersion{
		Version:             1,
		Title:               req.Title,
		DocumentType:        documentType,
		Content:             req.Content,
		CreatedAt:           now,
		ProducedFromVersion: 0,
		LengthChars:         len(req.Content),
	}
	if err := s.store.SaveVersion(ctx, session.ID, initial); err != nil {
		return nil, fmt.Errorf("failed to save initial version: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSessionCreated(ctx, events.SessionCreatedPayload{
			SessionID:    session.ID,
			Title:        session.Title,
			DocumentType: session.DocumentType,
			Goal:         session.Goal,
			Config:       session.Config,
			Timestamp:    events.Timestamp(now),
		}); err != nil {
			slog.Warn("Failed to publish session_created event", "session_id", session.ID, "error", err)
		}
		s.publishStatus(ctx, session.ID, models.StatusPending, "")
	}

	slog.Info("Session created",
		"session_id", session.ID,
		"title", session.Title,
		"document_type", session.DocumentType,
		"max_iterations", maxIterations,
		"num_participants", numParticipants)
	return session, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, mapStoreErr(err, "get session")
	}
	return session, nil
}

// Status returns the poll-safe status snapshot for a session.
func (s *SessionService) Status(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.SessionStatus{
		SessionID:        session.ID,
		Status:           session.Status,
		CurrentIteration: session.CurrentIteration,
		MaxIterations:    session.Config.MaxIterations,
		FinalVersion:     session.FinalVersion,
		StoppedBy:        session.StoppedBy,
	}, nil
}

// List returns session summaries matching the filter, newest first.
func (s *SessionService) List(ctx context.Context, filter store.ListFilter) ([]*models.SessionListEntry, error) {
	entries, err := s.store.ListSessions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return entries, nil
}

// Continue extends a finished session's iteration budget and re-queues
// it. Permitted only for Completed sessions that hit the iteration cap
// with High issues still open. Returns the new max_iterations.
func (s *SessionService) Continue(ctx context.Context, sessionID string, additionalIterations int) (int, error) {
	if additionalIterations < 1 {
		return 0, NewValidationError("additional_iterations", "must be at least 1")
	}

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if session.Status != models.StatusCompleted {
		return 0, fmt.Errorf("%w: session is %s, only completed sessions can be continued",
			ErrConflict, session.Status)
	}
	if session.StoppedBy != models.StoppedByMaxIterations {
		return 0, fmt.Errorf("%w: session stopped by %s, only max_iterations stops can be continued",
			ErrConflict, session.StoppedBy)
	}

	iterations, err := s.store.ListIterations(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load iterations: %w", err)
	}
	if len(iterations) == 0 {
		return 0, fmt.Errorf("%w: session has no iterations", ErrConflict)
	}
	last := iterations[len(iterations)-1]
	if last.Convergence.Counts.High == 0 {
		return 0, fmt.Errorf("%w: no High severity issues remain, nothing to continue", ErrConflict)
	}

	newMax := session.Config.MaxIterations + additionalIterations
	if newMax > s.defaults.MaxIterationsCap {
		return 0, NewValidationError("additional_iterations",
			fmt.Sprintf("new max_iterations %d exceeds cap %d", newMax, s.defaults.MaxIterationsCap))
	}

	session.Config.MaxIterations = newMax
	session.ContinuedFromIteration = session.CurrentIteration
	session.Status = models.StatusPending
	session.StoppedBy = ""
	session.ConvergenceReason = ""
	session.ErrorMessage = ""
	session.EndedAt = nil
	session.PodID = ""
	session.LastHeartbeatAt = nil

	if err := s.store.UpdateSession(ctx, session); err != nil {
		return 0, mapStoreErr(err, "update session")
	}
	s.publishStatus(ctx, sessionID, models.StatusPending, "")

	slog.Info("Session continued",
		"session_id", sessionID,
		"continued_from_iteration", session.ContinuedFromIteration,
		"new_max_iterations", newMax)
	return newMax, nil
}

// Cancel requests cancellation of a non-terminal session. A live driver
// is signalled cooperatively and finalizes the status itself; a session
// with no driver (still pending, or orphaned) is marked cancelled
// directly.
func (s *SessionService) Cancel(ctx context.Context, sessionID string) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status.IsTerminal() {
		return fmt.Errorf("%w: session is already %s", ErrConflict, session.Status)
	}

	if s.canceller != nil && s.canceller.CancelSession(sessionID) {
		slog.Info("Cancellation signalled to live driver", "session_id", sessionID)
		return nil
	}

	now := time.Now().UTC()
	session.Status = models.StatusCancelled
	session.EndedAt = &now
	if err := s.store.UpdateSession(ctx, session); err != nil {
		return mapStoreErr(err, "update session")
	}
	s.publishStatus(ctx, sessionID, models.StatusCancelled, "")

	slog.Info("Session cancelled", "session_id", sessionID)
	return nil
}

// Delete removes a terminal session and all its artifacts.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.Status.IsTerminal() {
		return fmt.Errorf("%w: session is %s, only terminal sessions can be deleted",
			ErrConflict, session.Status)
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return mapStoreErr(err, "delete session")
	}
	slog.Info("Session deleted", "session_id", sessionID)
	return nil
}

// GetVersion returns one document version.
func (s *SessionService) GetVersion(ctx context.Context, sessionID string, version int) (*models.DocumentVersion, error) {
	v, err := s.store.GetVersion(ctx, sessionID, version)
	if err != nil {
		return nil, mapStoreErr(err, "get version")
	}
	return v, nil
}

// ListVersions returns all document versions in ascending order.
func (s *SessionService) ListVersions(ctx context.Context, sessionID string) ([]*models.DocumentVersion, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	versions, err := s.store.ListVersions(ctx, sessionID)
	if err != nil {
		return nil, mapStoreErr(err, "list versions")
	}
	return versions, nil
}

// GetReviews returns a session's reviews, optionally narrowed to the
// reviews produced against one document version (0 means all).
func (s *SessionService) GetReviews(ctx context.Context, sessionID string, version int) ([]*models.Review, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	reviews, err := s.store.ListReviews(ctx, sessionID, 0)
	if err != nil {
		return nil, mapStoreErr(err, "list reviews")
	}
	if version == 0 {
		return reviews, nil
	}
	filtered := make([]*models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.DocumentVersion == version {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// GetReport returns the convergence report persisted when the session
// completed. Returns ErrNotFound until the session reaches Completed.
func (s *SessionService) GetReport(ctx context.Context, sessionID string) (*models.ConvergenceReport, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: report is available once the session completes", ErrNotFound)
	}

	report, err := s.store.GetReport(ctx, sessionID)
	if err != nil {
		return nil, mapStoreErr(err, "get report")
	}
	return report, nil
}

func (s *SessionService) publishStatus(ctx context.Context, sessionID string, status models.Status, errMsg string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		SessionID: sessionID,
		Status:    status,
		Error:     errMsg,
		Timestamp: events.Timestamp(time.Now().UTC()),
	})
	if err != nil {
		slog.Warn("Failed to publish session_status event", "session_id", sessionID, "error", err)
	}
}

func mapStoreErr(err error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

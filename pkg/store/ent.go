package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/roundtable-ai/roundtable/ent"
	entevent "github.com/roundtable-ai/roundtable/ent/event"
	entiteration "github.com/roundtable-ai/roundtable/ent/iterationrecord"
	entsession "github.com/roundtable-ai/roundtable/ent/refinementsession"
	entreview "github.com/roundtable-ai/roundtable/ent/review"
	entversion "github.com/roundtable-ai/roundtable/ent/documentversion"

	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

// EntStore is the PostgreSQL-backed Store. Model structs and their
// JSON-typed ent columns are bridged with marshal round-trips; the
// dense version/iteration sequences are enforced inside transactions.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// toJSONMap converts any struct to the map shape ent JSON columns use.
func toJSONMap(v any) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMap(m map[string]interface{}, out any) error {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func toJSONSlice(v any) ([]map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONSlice(m []map[string]interface{}, out any) error {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// CreateSession inserts a new session row.
func (s *EntStore) CreateSession(ctx context.Context, session *models.Session) error {
	cfg, err := toJSONMap(session.Config)
	if err != nil {
		return fmt.Errorf("encoding session config: %w", err)
	}

	create := s.client.RefinementSession.Create().
		SetID(session.ID).
		SetTitle(session.Title).
		SetGoal(session.Goal).
		SetDocumentType(session.DocumentType).
		SetStatus(entsession.Status(session.Status)).
		SetConfig(cfg).
		SetCurrentIteration(session.CurrentIteration).
		SetCreatedAt(session.CreatedAt)
	if session.Metadata != nil {
		create = create.SetSessionMetadata(session.Metadata)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("session %s: %w", session.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}

func sessionFromEnt(row *ent.RefinementSession) (*models.Session, error) {
	session := &models.Session{
		ID:               row.ID,
		Title:            row.Title,
		Goal:             row.Goal,
		DocumentType:     row.DocumentType,
		Status:           models.Status(row.Status),
		ModeratorFocus:   row.ModeratorFocus,
		CurrentIteration: row.CurrentIteration,
		CreatedAt:        row.CreatedAt,
		StartedAt:        row.StartedAt,
		EndedAt:          row.CompletedAt,
		Metadata:         row.SessionMetadata,
		LastHeartbeatAt:  row.LastHeartbeatAt,
	}
	if err := fromJSONMap(row.Config, &session.Config); err != nil {
		return nil, fmt.Errorf("decoding session config: %w", err)
	}
	if err := fromJSONSlice(row.Participants, &session.Participants); err != nil {
		return nil, fmt.Errorf("decoding participants: %w", err)
	}
	if err := fromJSONMap(row.Tokens, &session.Tokens); err != nil {
		return nil, fmt.Errorf("decoding tokens: %w", err)
	}
	if row.PlannerWarning != nil {
		session.PlannerWarning = *row.PlannerWarning
	}
	if row.FinalVersion != nil {
		session.FinalVersion = *row.FinalVersion
	}
	if row.StoppedBy != nil {
		session.StoppedBy = models.StoppedBy(*row.StoppedBy)
	}
	if row.ConvergenceReason != nil {
		session.ConvergenceReason = *row.ConvergenceReason
	}
	if row.ErrorMessage != nil {
		session.ErrorMessage = *row.ErrorMessage
	}
	if row.ContinuedFromIteration != nil {
		session.ContinuedFromIteration = *row.ContinuedFromIteration
	}
	if row.PodID != nil {
		session.PodID = *row.PodID
	}
	return session, nil
}

// GetSession returns a session by ID.
func (s *EntStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	row, err := s.client.RefinementSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return sessionFromEnt(row)
}

// ListSessions returns summaries matching the filter, newest first.
func (s *EntStore) ListSessions(ctx context.Context, filter ListFilter) ([]*models.SessionListEntry, error) {
	q := s.client.RefinementSession.Query().
		Order(ent.Desc(entsession.FieldCreatedAt), ent.Desc(entsession.FieldID))
	if filter.Status != "" {
		q = q.Where(entsession.StatusEQ(entsession.Status(filter.Status)))
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	out := make([]*models.SessionListEntry, 0, len(rows))
	for _, row := range rows {
		entry := &models.SessionListEntry{
			SessionID:        row.ID,
			Title:            row.Title,
			DocumentType:     row.DocumentType,
			Status:           models.Status(row.Status),
			CurrentIteration: row.CurrentIteration,
			CreatedAt:        row.CreatedAt,
		}
		if row.FinalVersion != nil {
			entry.FinalVersion = *row.FinalVersion
		}
		if row.StoppedBy != nil {
			entry.StoppedBy = models.StoppedBy(*row.StoppedBy)
		}
		out = append(out, entry)
	}
	return out, nil
}

func applySessionUpdate(update *ent.RefinementSessionUpdateOne, session *models.Session) (*ent.RefinementSessionUpdateOne, error) {
	cfg, err := toJSONMap(session.Config)
	if err != nil {
		return nil, fmt.Errorf("encoding session config: %w", err)
	}
	update = update.
		SetStatus(entsession.Status(session.Status)).
		SetConfig(cfg).
		SetModeratorFocus(session.ModeratorFocus).
		SetCurrentIteration(session.CurrentIteration)

	if session.Participants != nil {
		parts, err := toJSONSlice(session.Participants)
		if err != nil {
			return nil, fmt.Errorf("encoding participants: %w", err)
		}
		update = update.SetParticipants(parts)
	}
	if session.Tokens != nil {
		tokens, err := toJSONMap(session.Tokens)
		if err != nil {
			return nil, fmt.Errorf("encoding tokens: %w", err)
		}
		update = update.SetTokens(tokens)
	}
	if session.PlannerWarning != "" {
		update = update.SetPlannerWarning(session.PlannerWarning)
	}
	if session.FinalVersion > 0 {
		update = update.SetFinalVersion(session.FinalVersion)
	}
	if session.StoppedBy != "" {
		update = update.SetStoppedBy(string(session.StoppedBy))
	} else {
		update = update.ClearStoppedBy()
	}
	if session.ConvergenceReason != "" {
		update = update.SetConvergenceReason(session.ConvergenceReason)
	}
	if session.ErrorMessage != "" {
		update = update.SetErrorMessage(session.ErrorMessage)
	} else {
		update = update.ClearErrorMessage()
	}
	if session.ContinuedFromIteration > 0 {
		update = update.SetContinuedFromIteration(session.ContinuedFromIteration)
	}
	if session.StartedAt != nil {
		update = update.SetStartedAt(*session.StartedAt)
	}
	if session.EndedAt != nil {
		update = update.SetCompletedAt(*session.EndedAt)
	} else {
		update = update.ClearCompletedAt()
	}
	if session.PodID != "" {
		update = update.SetPodID(session.PodID)
	}
	if session.LastHeartbeatAt != nil {
		update = update.SetLastHeartbeatAt(*session.LastHeartbeatAt)
	}
	if session.Metadata != nil {
		update = update.SetSessionMetadata(session.Metadata)
	}
	return update, nil
}

// UpdateSession persists the session's mutable fields.
func (s *EntStore) UpdateSession(ctx context.Context, session *models.Session) error {
	update, err := applySessionUpdate(s.client.RefinementSession.UpdateOneID(session.ID), session)
	if err != nil {
		return err
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", session.ID, ErrNotFound)
		}
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

// DeleteSession removes a session; children cascade at the database
// level.
func (s *EntStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.RefinementSession.DeleteOneID(sessionID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func createVersion(ctx context.Context, tx *ent.Tx, sessionID string, version *models.DocumentVersion) error {
	maxSoFar, err := tx.DocumentVersion.Query().
		Where(entversion.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("counting versions: %w", err)
	}
	if version.Version != maxSoFar+1 {
		return fmt.Errorf("version %d for session %s (next is %d): %w",
			version.Version, sessionID, maxSoFar+1, ErrVersionConflict)
	}

	err = tx.DocumentVersion.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetVersion(version.Version).
		SetTitle(version.Title).
		SetDocumentType(version.DocumentType).
		SetContent(version.Content).
		SetProducedFromVersion(version.ProducedFromVersion).
		SetLengthChars(version.LengthChars).
		SetCreatedAt(version.CreatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("version %d for session %s: %w", version.Version, sessionID, ErrVersionConflict)
		}
		return fmt.Errorf("saving version: %w", err)
	}
	return nil
}

// SaveVersion appends a document version, enforcing the dense
// max-plus-one sequence.
func (s *EntStore) SaveVersion(ctx context.Context, sessionID string, version *models.DocumentVersion) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := createVersion(ctx, tx, sessionID, version); err != nil {
		return err
	}
	return tx.Commit()
}

func versionFromEnt(row *ent.DocumentVersion) *models.DocumentVersion {
	return &models.DocumentVersion{
		Version:             row.Version,
		Title:               row.Title,
		DocumentType:        row.DocumentType,
		Content:             row.Content,
		ProducedFromVersion: row.ProducedFromVersion,
		LengthChars:         row.LengthChars,
		CreatedAt:           row.CreatedAt,
	}
}

// GetVersion returns one document version.
func (s *EntStore) GetVersion(ctx context.Context, sessionID string, version int) (*models.DocumentVersion, error) {
	row, err := s.client.DocumentVersion.Query().
		Where(entversion.SessionIDEQ(sessionID), entversion.VersionEQ(version)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("version %d of session %s: %w", version, sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting version: %w", err)
	}
	return versionFromEnt(row), nil
}

// LatestVersion returns the highest-numbered version.
func (s *EntStore) LatestVersion(ctx context.Context, sessionID string) (*models.DocumentVersion, error) {
	row, err := s.client.DocumentVersion.Query().
		Where(entversion.SessionIDEQ(sessionID)).
		Order(ent.Desc(entversion.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s has no versions: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting latest version: %w", err)
	}
	return versionFromEnt(row), nil
}

// ListVersions returns all versions in ascending order.
func (s *EntStore) ListVersions(ctx context.Context, sessionID string) ([]*models.DocumentVersion, error) {
	rows, err := s.client.DocumentVersion.Query().
		Where(entversion.SessionIDEQ(sessionID)).
		Order(ent.Asc(entversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	out := make([]*models.DocumentVersion, 0, len(rows))
	for _, row := range rows {
		out = append(out, versionFromEnt(row))
	}
	return out, nil
}

func reviewFromEnt(row *ent.Review) (*models.Review, error) {
	review := &models.Review{
		ReviewerName:      row.ReviewerName,
		OverallAssessment: row.OverallAssessment,
		Timestamp:         row.CreatedAt,
		Iteration:         row.Iteration,
		DocumentVersion:   row.DocumentVersion,
		Model:             row.Model,
		Salvaged:          row.Salvaged,
	}
	if err := fromJSONSlice(row.Issues, &review.Issues); err != nil {
		return nil, fmt.Errorf("decoding issues: %w", err)
	}
	if err := fromJSONMap(row.Tokens, &review.Tokens); err != nil {
		return nil, fmt.Errorf("decoding review tokens: %w", err)
	}
	return review, nil
}

// ListReviews returns a session's reviews; iteration 0 means all.
func (s *EntStore) ListReviews(ctx context.Context, sessionID string, iteration int) ([]*models.Review, error) {
	q := s.client.Review.Query().
		Where(entreview.SessionIDEQ(sessionID)).
		Order(ent.Asc(entreview.FieldIteration), ent.Asc(entreview.FieldReviewerName))
	if iteration != 0 {
		q = q.Where(entreview.IterationEQ(iteration))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	out := make([]*models.Review, 0, len(rows))
	for _, row := range rows {
		review, err := reviewFromEnt(row)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, nil
}

func iterationFromEnt(row *ent.IterationRecord) models.IterationRecord {
	rec := models.IterationRecord{
		IterationIndex: row.Iteration,
		InputVersion:   row.InputVersion,
		OutputVersion:  row.OutputVersion,
		StartedAt:      row.StartedAt,
		EndedAt:        row.EndedAt,
		Convergence: models.ConvergenceCheck{
			Counts: models.SeverityCounts{
				High:   row.HighCount,
				Medium: row.MediumCount,
				Low:    row.LowCount,
			},
			Delta:    row.Delta,
			Decision: row.ShouldStop,
			Reason:   row.DecisionReason,
		},
	}
	if row.StoppedBy != nil {
		rec.Convergence.StoppedBy = models.StoppedBy(*row.StoppedBy)
	}
	return rec
}

// ListIterations returns the session's iteration records in order.
func (s *EntStore) ListIterations(ctx context.Context, sessionID string) ([]models.IterationRecord, error) {
	rows, err := s.client.IterationRecord.Query().
		Where(entiteration.SessionIDEQ(sessionID)).
		Order(ent.Asc(entiteration.FieldIteration)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing iterations: %w", err)
	}
	out := make([]models.IterationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, iterationFromEnt(row))
	}
	return out, nil
}

// CommitIteration atomically persists one finished iteration.
func (s *EntStore) CommitIteration(ctx context.Context, sessionID string, commit IterationCommit) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	count, err := tx.IterationRecord.Query().
		Where(entiteration.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("counting iterations: %w", err)
	}
	if commit.Record.IterationIndex != count+1 {
		return fmt.Errorf("iteration %d for session %s (next is %d): %w",
			commit.Record.IterationIndex, sessionID, count+1, ErrVersionConflict)
	}

	for _, review := range commit.Reviews {
		issues, err := toJSONSlice(review.Issues)
		if err != nil {
			return fmt.Errorf("encoding issues: %w", err)
		}
		tokens, err := toJSONMap(review.Tokens)
		if err != nil {
			return fmt.Errorf("encoding review tokens: %w", err)
		}
		counts := review.Counts()
		err = tx.Review.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetIteration(review.Iteration).
			SetDocumentVersion(review.DocumentVersion).
			SetReviewerName(review.ReviewerName).
			SetModel(review.Model).
			SetIssues(issues).
			SetOverallAssessment(review.OverallAssessment).
			SetHighCount(counts.High).
			SetMediumCount(counts.Medium).
			SetLowCount(counts.Low).
			SetSalvaged(review.Salvaged).
			SetTokens(tokens).
			SetCreatedAt(review.Timestamp).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("saving review: %w", err)
		}
	}

	rec := commit.Record
	create := tx.IterationRecord.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetIteration(rec.IterationIndex).
		SetInputVersion(rec.InputVersion).
		SetOutputVersion(rec.OutputVersion).
		SetHighCount(rec.Convergence.Counts.High).
		SetMediumCount(rec.Convergence.Counts.Medium).
		SetLowCount(rec.Convergence.Counts.Low).
		SetDelta(rec.Convergence.Delta).
		SetShouldStop(rec.Convergence.Decision).
		SetDecisionReason(rec.Convergence.Reason).
		SetStartedAt(rec.StartedAt).
		SetEndedAt(rec.EndedAt)
	if rec.Convergence.StoppedBy != "" {
		create = create.SetStoppedBy(string(rec.Convergence.StoppedBy))
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("iteration %d for session %s: %w", rec.IterationIndex, sessionID, ErrVersionConflict)
		}
		return fmt.Errorf("saving iteration record: %w", err)
	}

	if commit.NewVersion != nil {
		if err := createVersion(ctx, tx, sessionID, commit.NewVersion); err != nil {
			return err
		}
	}

	update := tx.RefinementSession.UpdateOneID(sessionID).
		SetCurrentIteration(commit.CurrentIteration)
	if commit.Tokens != nil {
		tokens, err := toJSONMap(commit.Tokens)
		if err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		update = update.SetTokens(tokens)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating session counters: %w", err)
	}

	return tx.Commit()
}

// SaveReport persists the terminal convergence report on the session
// row, replacing any prior one.
func (s *EntStore) SaveReport(ctx context.Context, sessionID string, report *models.ConvergenceReport) error {
	encoded, err := toJSONMap(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	err = s.client.RefinementSession.UpdateOneID(sessionID).
		SetConvergenceReport(encoded).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// GetReport returns the persisted convergence report.
func (s *EntStore) GetReport(ctx context.Context, sessionID string) (*models.ConvergenceReport, error) {
	row, err := s.client.RefinementSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if row.ConvergenceReport == nil {
		return nil, fmt.Errorf("report for session %s: %w", sessionID, ErrNotFound)
	}
	var report models.ConvergenceReport
	if err := fromJSONMap(row.ConvergenceReport, &report); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &report, nil
}

// ClaimNextPending atomically claims the oldest pending session using
// FOR UPDATE SKIP LOCKED, so concurrent workers never double-claim.
func (s *EntStore) ClaimNextPending(ctx context.Context, podID string) (*models.Session, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.RefinementSession.Query().
		Where(entsession.StatusEQ(entsession.StatusPending)).
		Order(ent.Asc(entsession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoPending
		}
		return nil, fmt.Errorf("querying pending session: %w", err)
	}

	now := time.Now().UTC()
	row, err = row.Update().
		SetStatus(entsession.StatusPlanning).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return sessionFromEnt(row)
}

// Heartbeat refreshes the claim on a running session.
func (s *EntStore) Heartbeat(ctx context.Context, sessionID, podID string) error {
	n, err := s.client.RefinementSession.Update().
		Where(entsession.IDEQ(sessionID), entsession.PodIDEQ(podID)).
		SetLastHeartbeatAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not claimed by %s: %w", sessionID, podID, ErrNotFound)
	}
	return nil
}

// RecoverOrphans fails sessions whose worker stopped heartbeating
// before cutoff.
func (s *EntStore) RecoverOrphans(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.client.RefinementSession.Query().
		Where(
			entsession.StatusIn(entsession.StatusPlanning, entsession.StatusRunning),
			entsession.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying orphans: %w", err)
	}

	var recovered []string
	now := time.Now().UTC()
	for _, row := range rows {
		err := row.Update().
			SetStatus(entsession.StatusFailed).
			SetErrorMessage("worker stopped heartbeating, session orphaned").
			SetCompletedAt(now).
			Exec(ctx)
		if err != nil {
			return recovered, fmt.Errorf("failing orphan %s: %w", row.ID, err)
		}
		recovered = append(recovered, row.ID)
	}
	return recovered, nil
}

// AppendEvent stores a progress event for catchup.
func (s *EntStore) AppendEvent(ctx context.Context, sessionID, channel string, payload []byte) (int, error) {
	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return 0, fmt.Errorf("decoding event payload: %w", err)
	}
	row, err := s.client.Event.Create().
		SetSessionID(sessionID).
		SetChannel(channel).
		SetPayload(decoded).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("saving event: %w", err)
	}
	return row.ID, nil
}

// GetCatchupEvents returns persisted events after sinceID, oldest
// first.
func (s *EntStore) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	q := s.client.Event.Query().
		Where(entevent.ChannelEQ(channel), entevent.IDGT(sinceID)).
		Order(ent.Asc(entevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying catchup events: %w", err)
	}
	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{ID: row.ID, Payload: row.Payload})
	}
	return out, nil
}

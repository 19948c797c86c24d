// Package roundtable is the embedded entry point for the refinement
// loop. It assembles the planner, reviewer panel, moderator,
// convergence engine, an in-memory store and the event bus from a
// Config and drives a session to a terminal status in the calling
// goroutine. The HTTP server uses the same building blocks with the
// database-backed store and the worker pool instead.
package roundtable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/queue"
	"github.com/roundtable-ai/roundtable/pkg/services"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// Config assembles one embedded refinement run.
type Config struct {
	// Document under review.
	Title        string
	Content      string
	Goal         string
	DocumentType string

	// Panel composition.
	Preset           models.Preset
	NumParticipants  int
	ParticipantStyle string
	ModelStrategy    models.ModelStrategy

	// Loop control. Zero values fall back to the session defaults.
	MaxIterations      int
	DeltaThreshold     float64
	StopOnNoHighIssues *bool
	ForceMaxIterations bool

	// Client issues every LLM exchange. Required.
	Client llm.Client

	// Model is the default model for planner, moderator and uniform
	// reviewers. Required.
	Model string

	// ModelPool feeds the diverse reviewer strategy. Optional.
	ModelPool []string

	// Defaults override the built-in session defaults. Optional.
	Defaults *config.SessionDefaults
}

// Result is the outcome of a finished run. Report and FinalDocument
// are populated only when the session completed; a Failed or Cancelled
// session is reported through Session.Status rather than an error.
type Result struct {
	Session       *models.Session
	Report        *models.ConvergenceReport
	FinalDocument *models.DocumentVersion
}

// Roundtable is an embedded refinement engine over an in-memory store.
// One instance can run many sessions; artifacts stay readable until
// Close.
type Roundtable struct {
	store     *store.MemoryStore
	bus       *events.Bus
	publisher *events.Publisher
	service   *services.SessionService
	executor  *queue.RoundtableExecutor
}

// New assembles an embedded engine from cfg.
func New(cfg Config) (*Roundtable, error) {
	if cfg.Client == nil {
		return nil, errors.New("roundtable: Client is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("roundtable: Model is required")
	}

	st := store.NewMemoryStore()
	bus := events.NewBus()
	publisher := events.NewPublisher(st, bus)
	llmCfg := &config.LLMConfig{
		DefaultModel: cfg.Model,
		ModelPool:    cfg.ModelPool,
	}
	return &Roundtable{
		store:     st,
		bus:       bus,
		publisher: publisher,
		service:   services.NewSessionService(st, publisher, cfg.Defaults),
		executor:  queue.NewRoundtableExecutor(st, publisher, cfg.Client, llmCfg),
	}, nil
}

// Run starts a session from cfg and drives it to a terminal status.
// This is the one-shot form; use New plus Start/Execute/Continue when
// event subscriptions or continuations are needed.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	rt, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defer rt.Close()

	session, err := rt.Start(ctx, cfg.startRequest())
	if err != nil {
		return nil, err
	}
	return rt.Execute(ctx, session.ID)
}

func (c Config) startRequest() models.StartRequest {
	return models.StartRequest{
		Title:              c.Title,
		Content:            c.Content,
		Goal:               c.Goal,
		DocumentType:       c.DocumentType,
		MaxIterations:      c.MaxIterations,
		NumParticipants:    c.NumParticipants,
		DeltaThreshold:     c.DeltaThreshold,
		Preset:             c.Preset,
		ParticipantStyle:   c.ParticipantStyle,
		Model:              c.Model,
		ModelStrategy:      c.ModelStrategy,
		StopOnNoHighIssues: c.StopOnNoHighIssues,
		ForceMaxIterations: c.ForceMaxIterations,
	}
}

// Start validates the request and creates a pending session with its
// initial document version. The loop does not run until Execute.
func (rt *Roundtable) Start(ctx context.Context, req models.StartRequest) (*models.Session, error) {
	return rt.service.Create(ctx, req)
}

// Execute drives a pending session to a terminal status and returns
// the outcome. It blocks until the loop stops.
func (rt *Roundtable) Execute(ctx context.Context, sessionID string) (*Result, error) {
	session, err := rt.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.Status != models.StatusPending {
		return nil, fmt.Errorf("session %s is %s, expected pending", sessionID, session.Status)
	}

	// Claim the session the way a queue worker would so the executor
	// sees the same starting state in both deployments.
	now := time.Now().UTC()
	session.Status = models.StatusPlanning
	session.PodID = "embedded"
	session.LastHeartbeatAt = &now
	if err := rt.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	result := rt.executor.Execute(ctx, session)
	if err := rt.finalize(sessionID, result); err != nil {
		return nil, err
	}
	return rt.result(sessionID)
}

// Continue extends a completed session's iteration budget and runs the
// added iterations, resuming from the final document version.
func (rt *Roundtable) Continue(ctx context.Context, sessionID string, additionalIterations int) (*Result, error) {
	if _, err := rt.service.Continue(ctx, sessionID, additionalIterations); err != nil {
		return nil, err
	}
	return rt.Execute(ctx, sessionID)
}

// finalize writes the terminal status. A background context is used so
// a cancelled run still records its outcome.
func (rt *Roundtable) finalize(sessionID string, result *queue.ExecutionResult) error {
	ctx := context.Background()

	session, err := rt.store.GetSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to reload session: %w", err)
	}

	now := time.Now().UTC()
	session.Status = result.Status
	session.EndedAt = &now
	session.StoppedBy = result.StoppedBy
	session.ConvergenceReason = result.Reason
	if result.FinalVersion > 0 {
		session.FinalVersion = result.FinalVersion
	}
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
		session.ErrorMessage = errMsg
	}
	if err := rt.store.UpdateSession(ctx, session); err != nil {
		return fmt.Errorf("failed to write terminal status: %w", err)
	}

	if err := rt.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		SessionID: sessionID,
		Status:    result.Status,
		Error:     errMsg,
		Timestamp: events.Timestamp(now),
	}); err != nil {
		return fmt.Errorf("failed to publish terminal status: %w", err)
	}
	return nil
}

func (rt *Roundtable) result(sessionID string) (*Result, error) {
	ctx := context.Background()

	session, err := rt.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	res := &Result{Session: session}

	if session.Status == models.StatusCompleted {
		report, err := rt.service.GetReport(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load report: %w", err)
		}
		res.Report = report

		doc, err := rt.store.GetVersion(ctx, sessionID, session.FinalVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to load final version: %w", err)
		}
		res.FinalDocument = doc
	}
	return res, nil
}

// Events subscribes to a session's live event stream. Subscribe before
// Execute; the bus does not replay. Cancel the subscription when done.
func (rt *Roundtable) Events(sessionID string) *events.Subscription {
	return rt.bus.Subscribe(events.SessionChannel(sessionID))
}

// EventLog returns the persisted event stream for a session in
// publication order.
func (rt *Roundtable) EventLog(ctx context.Context, sessionID string) ([]events.CatchupEvent, error) {
	return rt.store.GetCatchupEvents(ctx, events.SessionChannel(sessionID), 0, 1000)
}

// Session returns session metadata.
func (rt *Roundtable) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	return rt.service.Get(ctx, sessionID)
}

// Report returns the convergence report. Completed sessions only.
func (rt *Roundtable) Report(ctx context.Context, sessionID string) (*models.ConvergenceReport, error) {
	return rt.service.GetReport(ctx, sessionID)
}

// Version returns one document version.
func (rt *Roundtable) Version(ctx context.Context, sessionID string, version int) (*models.DocumentVersion, error) {
	return rt.service.GetVersion(ctx, sessionID, version)
}

// Reviews returns the reviews for one document version, or all reviews
// when version is 0.
func (rt *Roundtable) Reviews(ctx context.Context, sessionID string, version int) ([]*models.Review, error) {
	return rt.service.GetReviews(ctx, sessionID, version)
}

// Close releases the event bus. Artifacts become unreachable.
func (rt *Roundtable) Close() {
	rt.bus.Close()
}

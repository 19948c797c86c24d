package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/agent"
	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/convergence"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// RoundtableExecutor drives a claimed session through meta-planning and
// the review/converge/moderate loop. Each finished iteration is
// committed atomically; a fatal error inside an iteration discards that
// iteration's partial work and fails the session.
type RoundtableExecutor struct {
	store     store.Store
	publisher *events.Publisher
	llmClient llm.Client
	planner   *agent.Planner
	llmCfg    *config.LLMConfig
}

// NewRoundtableExecutor creates the session executor. publisher may be
// nil (streaming disabled).
func NewRoundtableExecutor(st store.Store, publisher *events.Publisher, client llm.Client, llmCfg *config.LLMConfig) *RoundtableExecutor {
	return &RoundtableExecutor{
		store:     st,
		publisher: publisher,
		llmClient: client,
		planner:   agent.NewPlanner(client, llmCfg.DefaultModel, llmCfg.ModelPool),
		llmCfg:    llmCfg,
	}
}

// reviewOutcome pairs one reviewer's result with its launch index so
// the fan-out can be collected in panel order.
type reviewOutcome struct {
	index    int
	review   *models.Review
	salvaged bool
	err      error
}

// Execute runs the session to a terminal state. The session arrives in
// Planning (freshly claimed); participants are already present when
// this is a continuation run.
func (e *RoundtableExecutor) Execute(ctx context.Context, session *models.Session) *ExecutionResult {
	log := slog.With("session_id", session.ID)

	doc, err := e.store.LatestVersion(ctx, session.ID)
	if err != nil {
		return e.failure(session, fmt.Errorf("failed to load document: %w", err))
	}

	if err := e.plan(ctx, session, doc); err != nil {
		if ctxErr := e.contextResult(ctx, session); ctxErr != nil {
			return ctxErr
		}
		return e.failure(session, err)
	}

	session.Status = models.StatusRunning
	if err := e.store.UpdateSession(ctx, session); err != nil {
		return e.failure(session, fmt.Errorf("failed to persist panel: %w", err))
	}
	e.publishStatus(ctx, session.ID, models.StatusRunning)

	primaryModel := session.Config.Model
	if primaryModel == "" {
		primaryModel = e.llmCfg.DefaultModel
	}
	reviewers := make([]*agent.Reviewer, len(session.Participants))
	for i, spec := range session.Participants {
		reviewers[i] = agent.NewReviewer(spec, e.llmClient, primaryModel)
	}
	moderator := agent.NewModerator(session.ModeratorFocus, session.Goal, e.llmClient, primaryModel)

	history, err := e.store.ListIterations(ctx, session.ID)
	if err != nil {
		return e.failure(session, fmt.Errorf("failed to load iteration history: %w", err))
	}

	engineCfg := convergence.Config{
		MaxIterations:      session.Config.MaxIterations,
		DeltaThreshold:     session.Config.DeltaThreshold,
		StopOnNoHighIssues: session.Config.StopOnNoHighIssues,
		ForceMaxIterations: session.Config.ForceMaxIterations,
	}

	for iter := session.CurrentIteration + 1; ; iter++ {
		if ctxErr := e.contextResult(ctx, session); ctxErr != nil {
			return ctxErr
		}

		doc, err = e.store.LatestVersion(ctx, session.ID)
		if err != nil {
			return e.failure(session, fmt.Errorf("failed to load document: %w", err))
		}

		startedAt := time.Now().UTC()
		e.publishEvent(ctx, session.ID, func() error {
			return e.publisher.PublishIterationStart(ctx, events.IterationStartPayload{
				SessionID:    session.ID,
				Iteration:    iter,
				InputVersion: doc.Version,
				Timestamp:    events.Timestamp(startedAt),
			})
		})
		log.Info("Iteration started", "iteration", iter, "input_version", doc.Version)

		reviews, err := e.runReviews(ctx, session, reviewers, doc, iter)
		if err != nil {
			// Partial reviews are discarded, but tokens from reviewers
			// that finished were already tallied; persist them so the
			// spend survives the failure.
			if uerr := e.store.UpdateSession(context.Background(), session); uerr != nil {
				log.Warn("Failed to persist partial token usage", "error", uerr)
			}
			if ctxErr := e.contextResult(ctx, session); ctxErr != nil {
				return ctxErr
			}
			return e.failure(session, fmt.Errorf("iteration %d reviews failed: %w", iter, err))
		}

		counts := models.CountBySeverity(reviews)
		delta := 0.0
		if iter >= 2 {
			prev, err := e.store.GetVersion(ctx, session.ID, doc.Version-1)
			if err != nil {
				return e.failure(session, fmt.Errorf("failed to load prior version: %w", err))
			}
			delta = convergence.Delta(prev.Content, doc.Content)
		}

		record := models.IterationRecord{
			IterationIndex: iter,
			InputVersion:   doc.Version,
			Convergence: models.ConvergenceCheck{
				Counts: counts,
				Delta:  delta,
			},
			StartedAt: startedAt,
		}
		history = append(history, record)

		decision := convergence.Decide(engineCfg, history)
		record.Convergence.Decision = decision.ShouldStop
		record.Convergence.Reason = decision.Reason
		record.Convergence.StoppedBy = decision.StoppedBy
		history[len(history)-1] = record

		e.publishEvent(ctx, session.ID, func() error {
			return e.publisher.PublishConvergenceCheck(ctx, events.ConvergenceCheckPayload{
				SessionID:  session.ID,
				Iteration:  iter,
				Counts:     counts,
				Delta:      delta,
				ShouldStop: decision.ShouldStop,
				Reason:     decision.Reason,
				StoppedBy:  decision.StoppedBy,
				Timestamp:  events.Timestamp(time.Now().UTC()),
			})
		})
		log.Info("Convergence checked",
			"iteration", iter,
			"high", counts.High, "medium", counts.Medium, "low", counts.Low,
			"delta", delta,
			"should_stop", decision.ShouldStop,
			"reason", decision.Reason)

		var newVersion *models.DocumentVersion
		var moderatorErr error
		var moderatorUsage models.TokenUsage
		if !decision.ShouldStop {
			e.publishEvent(ctx, session.ID, func() error {
				return e.publisher.PublishModeratorStart(ctx, events.ModeratorStartPayload{
					SessionID: session.ID,
					Iteration: iter,
					Timestamp: events.Timestamp(time.Now().UTC()),
				})
			})

			content, usage, err := moderator.Refine(ctx, session.ID, doc, reviews)
			moderatorUsage = usage
			addTokens(session, models.TokenKeyModerator, usage)
			if err != nil {
				moderatorErr = err
			} else {
				newVersion = &models.DocumentVersion{
					Version:             doc.Version + 1,
					Title:               session.Title,
					DocumentType:        session.DocumentType,
					Content:             content,
					CreatedAt:           time.Now().UTC(),
					ProducedFromVersion: doc.Version,
					LengthChars:         len(content),
				}
				record.OutputVersion = newVersion.Version
				history[len(history)-1] = record
			}
		}

		record.EndedAt = time.Now().UTC()
		history[len(history)-1] = record

		commit := store.IterationCommit{
			Reviews:          reviews,
			Record:           record,
			NewVersion:       newVersion,
			CurrentIteration: iter,
			Tokens:           session.Tokens,
		}
		if err := e.store.CommitIteration(ctx, session.ID, commit); err != nil {
			return e.failure(session, fmt.Errorf("failed to commit iteration %d: %w", iter, err))
		}
		session.CurrentIteration = iter

		if moderatorErr != nil {
			// Reviews and the record are committed; the iteration has
			// no output version and the session fails.
			if ctxErr := e.contextResult(ctx, session); ctxErr != nil {
				return ctxErr
			}
			return e.failure(session, fmt.Errorf("iteration %d moderation failed: %w", iter, moderatorErr))
		}

		if newVersion != nil {
			e.publishEvent(ctx, session.ID, func() error {
				return e.publisher.PublishModeratorComplete(ctx, events.ModeratorCompletePayload{
					SessionID:     session.ID,
					Iteration:     iter,
					OutputVersion: newVersion.Version,
					LengthChars:   newVersion.LengthChars,
					Tokens:        moderatorUsage,
					Timestamp:     events.Timestamp(time.Now().UTC()),
				})
			})
			log.Info("Moderator produced new version",
				"iteration", iter, "output_version", newVersion.Version)
		}

		if decision.ShouldStop {
			now := time.Now().UTC()
			session.Status = models.StatusCompleted
			session.FinalVersion = doc.Version
			session.StoppedBy = decision.StoppedBy
			session.ConvergenceReason = decision.Reason
			session.EndedAt = &now

			report := convergence.BuildReport(session, history)
			if err := e.store.SaveReport(ctx, session.ID, report); err != nil {
				return e.failure(session, fmt.Errorf("failed to save convergence report: %w", err))
			}

			total := totalTokens(session.Tokens)
			e.publishEvent(ctx, session.ID, func() error {
				return e.publisher.PublishRefinementComplete(ctx, events.RefinementCompletePayload{
					SessionID:        session.ID,
					FinalVersion:     doc.Version,
					Iterations:       iter,
					Converged:        report.Converged,
					StoppedBy:        decision.StoppedBy,
					Reason:           decision.Reason,
					FinalIssueCounts: report.FinalIssueCounts,
					TotalTokens:      total.Total,
					Timestamp:        events.Timestamp(now),
				})
			})
			log.Info("Refinement complete",
				"iterations", iter,
				"final_version", doc.Version,
				"stopped_by", decision.StoppedBy,
				"converged", report.Converged,
				"total_tokens", total.Total)
			return &ExecutionResult{
				Status:       models.StatusCompleted,
				StoppedBy:    decision.StoppedBy,
				Reason:       decision.Reason,
				FinalVersion: doc.Version,
			}
		}
	}
}

// plan produces the reviewer panel. A continuation run arrives with the
// panel already on the session and skips the meta-planner call.
func (e *RoundtableExecutor) plan(ctx context.Context, session *models.Session, doc *models.DocumentVersion) error {
	e.publishEvent(ctx, session.ID, func() error {
		return e.publisher.PublishRoundtableGenerating(ctx, events.RoundtableGeneratingPayload{
			SessionID: session.ID,
			Preset:    string(session.Config.Preset),
			Timestamp: events.Timestamp(time.Now().UTC()),
		})
	})

	if len(session.Participants) == 0 {
		result, err := e.planner.Plan(ctx, session.ID, session.Goal, session.DocumentType, doc.Content, session.Config)
		if err != nil {
			return fmt.Errorf("planning failed: %w", err)
		}
		session.Participants = result.Participants
		session.ModeratorFocus = result.ModeratorFocus
		session.PlannerWarning = result.Warning
		addTokens(session, models.TokenKeyMetaPlanner, result.Tokens)
		if result.Warning != "" {
			slog.Warn("Planner degraded to fallback panel",
				"session_id", session.ID, "warning", result.Warning)
		}
	}

	primaryModel := session.Config.Model
	if primaryModel == "" {
		primaryModel = e.llmCfg.DefaultModel
	}
	summaries := make([]events.ParticipantSummary, len(session.Participants))
	for i, p := range session.Participants {
		model := p.ModelID
		if model == "" {
			model = primaryModel
		}
		summaries[i] = events.ParticipantSummary{
			Name:        p.Name,
			Role:        p.Role,
			Perspective: p.Perspective,
			Model:       model,
		}
	}
	e.publishEvent(ctx, session.ID, func() error {
		return e.publisher.PublishRoundtableGenerated(ctx, events.RoundtableGeneratedPayload{
			SessionID:      session.ID,
			Participants:   summaries,
			ModeratorFocus: session.ModeratorFocus,
			Warning:        session.PlannerWarning,
			Timestamp:      events.Timestamp(time.Now().UTC()),
		})
	})
	return nil
}

// runReviews fans the panel out in parallel and collects the reviews in
// panel order. Token usage for every reviewer that finished is tallied
// onto the session; any reviewer failure fails the whole set.
func (e *RoundtableExecutor) runReviews(ctx context.Context, session *models.Session, reviewers []*agent.Reviewer, doc *models.DocumentVersion, iter int) ([]*models.Review, error) {
	results := make(chan reviewOutcome, len(reviewers))
	var wg sync.WaitGroup

	for i, reviewer := range reviewers {
		e.publishEvent(ctx, session.ID, func() error {
			return e.publisher.PublishCriticReviewStart(ctx, events.CriticReviewStartPayload{
				SessionID: session.ID,
				Iteration: iter,
				Reviewer:  reviewer.Name(),
				Model:     reviewer.Model(),
				Timestamp: events.Timestamp(time.Now().UTC()),
			})
		})

		wg.Add(1)
		go func(idx int, r *agent.Reviewer) {
			defer wg.Done()
			review, salvaged, err := r.Review(ctx, session.ID, doc)
			results <- reviewOutcome{index: idx, review: review, salvaged: salvaged, err: err}
		}(i, reviewer)
	}

	wg.Wait()
	close(results)

	outcomes := make([]reviewOutcome, 0, len(reviewers))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].index < outcomes[j].index })

	// Tally tokens for every reviewer that finished before surfacing any
	// failure, so a partial fan-out still accounts its spend.
	var firstErr error
	for _, outcome := range outcomes {
		if outcome.err != nil {
			if firstErr == nil {
				firstErr = outcome.err
			}
			continue
		}
		addTokens(session, outcome.review.ReviewerName, outcome.review.Tokens)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	reviews := make([]*models.Review, 0, len(outcomes))
	for _, outcome := range outcomes {
		review := outcome.review
		review.Iteration = iter
		review.DocumentVersion = doc.Version
		review.Model = reviewers[outcome.index].Model()
		review.Salvaged = outcome.salvaged
		reviews = append(reviews, review)

		if outcome.salvaged {
			e.publishLog(ctx, session.ID, events.LogLevelWarning,
				fmt.Sprintf("reviewer %s output was malformed and salvaged with a reformat round-trip", review.ReviewerName))
		}
		e.publishEvent(ctx, session.ID, func() error {
			return e.publisher.PublishCriticReviewComplete(ctx, events.CriticReviewCompletePayload{
				SessionID:         session.ID,
				Iteration:         iter,
				Reviewer:          review.ReviewerName,
				Counts:            review.Counts(),
				TopIssues:         events.SummarizeIssues(review, 3),
				OverallAssessment: review.OverallAssessment,
				Salvaged:          outcome.salvaged,
				Tokens:            review.Tokens,
				Timestamp:         events.Timestamp(time.Now().UTC()),
			})
		})
	}
	return reviews, nil
}

// contextResult maps context cancellation and timeout to a terminal
// result, or nil when the context is still live.
func (e *RoundtableExecutor) contextResult(ctx context.Context, session *models.Session) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		slog.Warn("Session timed out", "session_id", session.ID)
		return &ExecutionResult{
			Status:    models.StatusFailed,
			StoppedBy: models.StoppedByError,
			Error:     fmt.Errorf("session timed out"),
		}
	case errors.Is(ctx.Err(), context.Canceled):
		slog.Info("Session cancelled", "session_id", session.ID)
		return &ExecutionResult{
			Status: models.StatusCancelled,
			Error:  context.Canceled,
		}
	}
	return nil
}

func (e *RoundtableExecutor) failure(session *models.Session, err error) *ExecutionResult {
	slog.Error("Session failed", "session_id", session.ID, "error", err)
	return &ExecutionResult{
		Status:    models.StatusFailed,
		StoppedBy: models.StoppedByError,
		Error:     err,
	}
}

func (e *RoundtableExecutor) publishStatus(ctx context.Context, sessionID string, status models.Status) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		SessionID: sessionID,
		Status:    status,
		Timestamp: events.Timestamp(time.Now().UTC()),
	})
	if err != nil {
		slog.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

func (e *RoundtableExecutor) publishLog(ctx context.Context, sessionID string, level, message string) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishLog(ctx, events.LogPayload{
		SessionID: sessionID,
		Level:     level,
		Message:   message,
		Timestamp: events.Timestamp(time.Now().UTC()),
	})
	if err != nil {
		slog.Warn("Failed to publish log event", "session_id", sessionID, "error", err)
	}
}

// publishEvent runs one publisher call, logging failures instead of
// letting them interrupt the loop.
func (e *RoundtableExecutor) publishEvent(_ context.Context, sessionID string, fn func() error) {
	if e.publisher == nil {
		return
	}
	if err := fn(); err != nil {
		slog.Warn("Failed to publish event", "session_id", sessionID, "error", err)
	}
}

func addTokens(session *models.Session, key string, usage models.TokenUsage) {
	if session.Tokens == nil {
		session.Tokens = make(map[string]models.TokenUsage)
	}
	current := session.Tokens[key]
	current.Add(usage)
	session.Tokens[key] = current
}

func totalTokens(tokens map[string]models.TokenUsage) models.TokenUsage {
	var total models.TokenUsage
	for _, usage := range tokens {
		total.Add(usage)
	}
	return total
}

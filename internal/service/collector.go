package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"m365_collector/internal/config"
	"m365_collector/internal/domain"
)

const (
	endpointSubscribedSkus = "/subscribedSkus"
	endpointUsers          = "/users"
	endpointLicenseDetails = "/users/{upn}/licenseDetails"
)

// Collector drives a collection run through its phases, writing a checkpoint
// after every page so an interrupted run can pick up where it stopped.
type Collector struct {
	source      Source
	runs        RunStore
	checkpoints CheckpointStore
	users       UserActivityStore
	licenses    LicenseStore
	retries     RetryStore
	fetcher     *Fetcher
	writer      *PageWriter
	publisher   Publisher
	logger      *slog.Logger
	config      config.CollectionConfig
}

func NewCollector(
	source Source,
	runs RunStore,
	checkpoints CheckpointStore,
	users UserActivityStore,
	licenses LicenseStore,
	retries RetryStore,
	fetcher *Fetcher,
	writer *PageWriter,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.CollectionConfig,
) *Collector {
	if cfg.AssignmentBatchSize <= 0 {
		cfg.AssignmentBatchSize = 100
	}
	return &Collector{
		source:      source,
		runs:        runs,
		checkpoints: checkpoints,
		users:       users,
		licenses:    licenses,
		retries:     retries,
		fetcher:     fetcher,
		writer:      writer,
		publisher:   publisher,
		logger:      logger,
		config:      cfg,
	}
}

// resumePoint is where execution of a run continues.
type resumePoint struct {
	phase  domain.Phase
	offset int64
	cursor string
}

// Collect starts a new run. Unless auto resume is disabled, the most recent
// run still marked running is continued instead.
func (c *Collector) Collect(ctx context.Context) (*domain.RunSummary, error) {
	if !c.config.DisableAutoResume {
		run, err := c.runs.LatestRunning(ctx)
		if err != nil {
			return nil, fmt.Errorf("find unfinished run: %w", err)
		}
		if run != nil {
			return c.execute(ctx, run, true)
		}
	}

	run, err := c.runs.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}
	return c.execute(ctx, run, false)
}

// Resume continues runID from its latest checkpoint.
func (c *Collector) Resume(ctx context.Context, runID int64) (*domain.RunSummary, error) {
	run, err := c.runs.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	if run.Status != domain.RunRunning {
		return nil, fmt.Errorf("resume run %d (%s): %w", run.ID, run.Status, domain.ErrRunFinished)
	}
	return c.execute(ctx, run, true)
}

func (c *Collector) execute(ctx context.Context, run *domain.CollectionRun, resumed bool) (*domain.RunSummary, error) {
	startTime := time.Now()
	logger := c.logger.With("run_id", run.ID)
	summary := &domain.RunSummary{RunID: run.ID, Resumed: resumed}

	logger.Info("starting collection", "resumed", resumed)
	c.publish(ctx, &domain.RunEvent{Type: domain.EventRunStarted, RunID: run.ID, Status: domain.RunRunning})

	err := c.runPhases(ctx, run.ID, logger)
	if err == nil {
		err = c.summarize(ctx, summary)
	}
	summary.Duration = time.Since(startTime)

	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("collection interrupted, run left resumable", "error", err)
			return summary, err
		}

		logger.Error("collection failed", "error", err)
		msg := err.Error()
		finishCtx := context.WithoutCancel(ctx)
		if ferr := c.runs.Finish(finishCtx, run.ID, domain.RunFailed, nil, &msg); ferr != nil {
			logger.Error("failed to mark run failed", "error", ferr)
		}
		c.publish(finishCtx, &domain.RunEvent{
			Type:   domain.EventRunFailed,
			RunID:  run.ID,
			Status: domain.RunFailed,
			Error:  msg,
		})
		return summary, err
	}

	records := summary.Records()
	if err := c.runs.Finish(ctx, run.ID, domain.RunCompleted, &records, nil); err != nil {
		return summary, fmt.Errorf("finish run: %w", err)
	}
	c.publish(ctx, &domain.RunEvent{
		Type:    domain.EventRunCompleted,
		RunID:   run.ID,
		Status:  domain.RunCompleted,
		Records: records,
	})

	logger.Info("collection completed",
		"licenses", summary.Licenses,
		"users", summary.Users,
		"assignments", summary.Assignments,
		"retries", summary.Retries,
		"duration", summary.Duration,
	)

	return summary, nil
}

func (c *Collector) runPhases(ctx context.Context, runID int64, logger *slog.Logger) error {
	if err := c.source.Authenticate(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	point, err := c.resumePoint(ctx, runID)
	if err != nil {
		return err
	}
	if point == nil {
		logger.Info("all phases already complete")
		return nil
	}

	for phase := point.phase; phase != ""; phase = phase.Next() {
		var offset int64
		var cursor string
		if phase == point.phase {
			offset, cursor = point.offset, point.cursor
		}

		logger.Info("collecting phase", "phase", phase, "offset", offset)

		switch phase {
		case domain.PhaseLicenses:
			err = c.collectLicenses(ctx, runID)
		case domain.PhaseUserActivity:
			err = c.collectUsers(ctx, runID, offset, cursor)
		case domain.PhaseUserLicenses:
			err = c.collectAssignments(ctx, runID, offset)
		default:
			err = fmt.Errorf("unknown phase %q", phase)
		}
		if err != nil {
			return fmt.Errorf("collect %s: %w", phase, err)
		}
	}
	return nil
}

// resumePoint derives the next phase and offset from the latest checkpoint.
// It returns nil when every phase is complete.
func (c *Collector) resumePoint(ctx context.Context, runID int64) (*resumePoint, error) {
	cp, err := c.checkpoints.Latest(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}
	if cp == nil {
		return &resumePoint{phase: domain.Phases[0]}, nil
	}

	if cp.Complete() {
		next := cp.Phase.Next()
		if next == "" {
			return nil, nil
		}
		return &resumePoint{phase: next}, nil
	}

	switch cp.Phase {
	case domain.PhaseLicenses:
		return &resumePoint{phase: domain.PhaseLicenses}, nil
	case domain.PhaseUserActivity:
		if cp.Detail.NextLink == "" {
			return nil, fmt.Errorf("resume %s at %d: %w", cp.Phase, cp.Progress, domain.ErrResumeCursorMissing)
		}
	}

	c.logger.Info("resuming from checkpoint",
		"run_id", runID,
		"phase", cp.Phase,
		"progress", cp.Progress,
		"last_key", cp.Detail.LastKey,
	)

	return &resumePoint{phase: cp.Phase, offset: cp.Progress, cursor: cp.Detail.NextLink}, nil
}

func (c *Collector) collectLicenses(ctx context.Context, runID int64) error {
	licenses, err := fetchWithRetry(ctx, c.fetcher, runID, endpointSubscribedSkus, c.source.FetchSubscribedSkus)
	if err != nil {
		return err
	}

	total := int64(len(licenses))
	cp, err := c.writer.WriteLicenses(ctx, Page{
		RunID:   runID,
		Phase:   domain.PhaseLicenses,
		Total:   &total,
		Message: fmt.Sprintf("Collected %d license SKUs", total),
	}, licenses)
	if err != nil {
		return err
	}

	c.publishProgress(ctx, cp)
	return nil
}

// collectUsers pages through users starting at cursor. The total stays
// unknown until the last page, whose checkpoint records it.
func (c *Collector) collectUsers(ctx context.Context, runID int64, offset int64, cursor string) error {
	progress := offset

	for {
		page, err := fetchWithRetry(ctx, c.fetcher, runID, endpointUsers, func(ctx context.Context) (*domain.UserPage, error) {
			return c.source.FetchUsersPage(ctx, cursor)
		})
		if err != nil {
			return err
		}

		var total *int64
		if page.NextLink == "" {
			t := progress + int64(len(page.Users))
			total = &t
		}

		cp, err := c.writer.WriteUserActivity(ctx, Page{
			RunID:      runID,
			Phase:      domain.PhaseUserActivity,
			BatchStart: progress,
			Total:      total,
			Detail:     domain.CheckpointDetail{NextLink: page.NextLink},
			Message:    fmt.Sprintf("Collected %d users", progress+int64(len(page.Users))),
		}, page.Users)
		if err != nil {
			return err
		}

		c.publishProgress(ctx, cp)

		if page.NextLink == "" {
			return nil
		}
		progress = cp.Progress
		cursor = page.NextLink
	}
}

// collectAssignments fetches license details for the run's users in batches,
// ordered by principal name so offsets stay stable across resumes.
func (c *Collector) collectAssignments(ctx context.Context, runID int64, offset int64) error {
	total, err := c.users.Count(ctx, runID)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	progress := offset
	batch := int64(c.config.AssignmentBatchSize)

	for {
		upns, err := c.users.ListPrincipalNames(ctx, runID, progress, batch)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		var assignments []domain.UserLicense
		for _, upn := range upns {
			skuIDs, err := fetchWithRetry(ctx, c.fetcher, runID, endpointLicenseDetails, func(ctx context.Context) ([]string, error) {
				return c.source.FetchUserLicenses(ctx, upn)
			})
			if err != nil {
				return err
			}
			for _, skuID := range skuIDs {
				assignments = append(assignments, domain.UserLicense{
					RunID:             runID,
					UserPrincipalName: upn,
					SkuID:             skuID,
				})
			}
		}

		var detail domain.CheckpointDetail
		if len(upns) > 0 {
			detail.LastKey = upns[len(upns)-1]
		}

		processed := progress + int64(len(upns))
		cp, err := c.writer.WriteAssignments(ctx, Page{
			RunID:      runID,
			Phase:      domain.PhaseUserLicenses,
			BatchStart: progress,
			Count:      len(upns),
			Total:      &total,
			Detail:     detail,
			Message:    fmt.Sprintf("Fetched licenses for %d of %d users", processed, total),
		}, assignments)
		if err != nil {
			return err
		}

		c.publishProgress(ctx, cp)

		if cp.Complete() || len(upns) == 0 {
			return nil
		}
		progress = cp.Progress
	}
}

func (c *Collector) summarize(ctx context.Context, summary *domain.RunSummary) error {
	cp, err := c.checkpoints.LatestForPhase(ctx, summary.RunID, domain.PhaseLicenses)
	if err != nil {
		return fmt.Errorf("load licenses checkpoint: %w", err)
	}
	if cp != nil {
		summary.Licenses = cp.Progress
	}

	if summary.Users, err = c.users.Count(ctx, summary.RunID); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if summary.Assignments, err = c.licenses.CountAssignments(ctx, summary.RunID); err != nil {
		return fmt.Errorf("count assignments: %w", err)
	}

	retries, err := c.retries.ListByRun(ctx, summary.RunID)
	if err != nil {
		return fmt.Errorf("list retries: %w", err)
	}
	summary.Retries = len(retries)

	return nil
}

func (c *Collector) publishProgress(ctx context.Context, cp *domain.Checkpoint) {
	c.publish(ctx, &domain.RunEvent{
		Type:     domain.EventRunProgress,
		RunID:    cp.RunID,
		Status:   domain.RunRunning,
		Phase:    cp.Phase,
		Progress: cp.Progress,
		Total:    cp.Total,
	})
}

// publish sends a lifecycle event. Delivery failures are logged and never
// fail the run.
func (c *Collector) publish(ctx context.Context, event *domain.RunEvent) {
	if c.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()

	if err := c.publisher.Publish(ctx, event); err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Warn("failed to publish run event",
			"type", event.Type,
			"run_id", event.RunID,
			"error", err,
		)
	}
}

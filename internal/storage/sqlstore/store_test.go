package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"m365_collector/internal/domain"
	"m365_collector/testdata/utils"
)

type SQLiteStoreSuite struct {
	suite.Suite
	ctx context.Context
	db  *sqlx.DB
}

func (s *SQLiteStoreSuite) SetupTest() {
	s.ctx = context.Background()

	dsn := filepath.Join(s.T().TempDir(), "collector.db") + "?_pragma=foreign_keys(1)"
	db, err := Open(s.ctx, DriverSQLite, dsn)
	s.Require().NoError(err)
	s.db = db

	version, err := Migrate(db)
	s.Require().NoError(err)
	s.Equal(uint(1), version)
}

func (s *SQLiteStoreSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreSuite))
}

func (s *SQLiteStoreSuite) startRun() *domain.CollectionRun {
	run, err := NewRunStore(s.db).Start(s.ctx)
	s.Require().NoError(err)
	return run
}

func (s *SQLiteStoreSuite) TestMigrate_Idempotent() {
	version, err := Migrate(s.db)
	s.NoError(err)
	s.Equal(uint(1), version)
}

func (s *SQLiteStoreSuite) TestOpen_UnsupportedDriver() {
	_, err := Open(s.ctx, "mysql", "dsn")
	s.Error(err)
}

func (s *SQLiteStoreSuite) TestRunStore_StartAndFinish() {
	store := NewRunStore(s.db)

	run, err := store.Start(s.ctx)
	s.Require().NoError(err)
	s.Greater(run.ID, int64(0))
	s.Equal(domain.RunRunning, run.Status)

	err = store.Finish(s.ctx, run.ID, domain.RunCompleted, utils.Ptr(int64(300)), nil)
	s.Require().NoError(err)

	got, err := store.Get(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Equal(domain.RunCompleted, got.Status)
	s.Require().NotNil(got.FinishedAt)
	s.Require().NotNil(got.RecordsCollected)
	s.Equal(int64(300), *got.RecordsCollected)
	s.Nil(got.ErrorMessage)
	s.WithinDuration(run.StartedAt, got.StartedAt, time.Second)
}

func (s *SQLiteStoreSuite) TestRunStore_FinishTruncatesError() {
	store := NewRunStore(s.db)
	run := s.startRun()

	long := strings.Repeat("x", 1500)
	s.Require().NoError(store.Finish(s.ctx, run.ID, domain.RunFailed, nil, &long))

	got, err := store.Get(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Equal(domain.RunFailed, got.Status)
	s.Require().NotNil(got.ErrorMessage)
	s.Len(*got.ErrorMessage, MaxErrorMessageLength)
	s.Nil(got.RecordsCollected)
}

func (s *SQLiteStoreSuite) TestRunStore_FinishOnlyOnce() {
	store := NewRunStore(s.db)
	run := s.startRun()

	s.Require().NoError(store.Finish(s.ctx, run.ID, domain.RunCompleted, utils.Ptr(int64(12)), nil))

	msg := "late failure"
	err := store.Finish(s.ctx, run.ID, domain.RunFailed, nil, &msg)
	s.ErrorIs(err, domain.ErrRunFinished)

	got, err := store.Get(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Equal(domain.RunCompleted, got.Status)
	s.Nil(got.ErrorMessage)
	s.Require().NotNil(got.RecordsCollected)
	s.Equal(int64(12), *got.RecordsCollected)
}

func (s *SQLiteStoreSuite) TestRunStore_NotFound() {
	store := NewRunStore(s.db)

	_, err := store.Get(s.ctx, 42)
	s.True(errors.Is(err, domain.ErrRunNotFound))

	err = store.Finish(s.ctx, 42, domain.RunCompleted, nil, nil)
	s.True(errors.Is(err, domain.ErrRunNotFound))
}

func (s *SQLiteStoreSuite) TestRunStore_LatestRunningAndList() {
	store := NewRunStore(s.db)

	latest, err := store.LatestRunning(s.ctx)
	s.NoError(err)
	s.Nil(latest)

	first := s.startRun()
	second := s.startRun()
	s.Require().NoError(store.Finish(s.ctx, second.ID, domain.RunCompleted, nil, nil))

	latest, err = store.LatestRunning(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(first.ID, latest.ID)

	runs, err := store.List(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(runs, 2)
	s.Equal(second.ID, runs[0].ID)
	s.Equal(first.ID, runs[1].ID)
}

func (s *SQLiteStoreSuite) TestCheckpointStore_LatestWins() {
	store := NewCheckpointStore(s.db)
	run := s.startRun()

	cp, err := store.Latest(s.ctx, run.ID)
	s.NoError(err)
	s.Nil(cp)

	ok, err := store.CanResume(s.ctx, run.ID)
	s.NoError(err)
	s.False(ok)

	for i, progress := range []int64{100, 200, 300} {
		cp := &domain.Checkpoint{
			RunID:    run.ID,
			Phase:    domain.PhaseUserActivity,
			Progress: progress,
			Detail:   domain.CheckpointDetail{NextLink: fmt.Sprintf("https://graph/users?page=%d", i+2)},
		}
		if progress == 300 {
			cp.Total = utils.Ptr(int64(300))
			cp.Detail = domain.CheckpointDetail{LastKey: "zed@contoso.com"}
		}
		s.Require().NoError(store.Record(s.ctx, cp))
		s.Greater(cp.ID, int64(0))
	}

	latest, err := store.Latest(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(int64(300), latest.Progress)
	s.Require().NotNil(latest.Total)
	s.Equal(int64(300), *latest.Total)
	s.Equal("zed@contoso.com", latest.Detail.LastKey)
	s.Empty(latest.Detail.NextLink)
	s.True(latest.Complete())

	ok, err = store.CanResume(s.ctx, run.ID)
	s.NoError(err)
	s.True(ok)
}

func (s *SQLiteStoreSuite) TestCheckpointStore_UnknownTotalRoundTrips() {
	store := NewCheckpointStore(s.db)
	run := s.startRun()

	s.Require().NoError(store.Record(s.ctx, &domain.Checkpoint{
		RunID:    run.ID,
		Phase:    domain.PhaseUserActivity,
		Progress: 100,
		Detail:   domain.CheckpointDetail{NextLink: "https://graph/users?$skiptoken=abc"},
	}))

	latest, err := store.Latest(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Nil(latest.Total)
	s.False(latest.Complete())
	s.Equal("https://graph/users?$skiptoken=abc", latest.Detail.NextLink)
}

func (s *SQLiteStoreSuite) TestCheckpointStore_LatestForPhase() {
	store := NewCheckpointStore(s.db)
	run := s.startRun()

	s.Require().NoError(store.Record(s.ctx, &domain.Checkpoint{
		RunID: run.ID, Phase: domain.PhaseLicenses, Progress: 4, Total: utils.Ptr(int64(4)),
	}))
	s.Require().NoError(store.Record(s.ctx, &domain.Checkpoint{
		RunID: run.ID, Phase: domain.PhaseUserActivity, Progress: 100,
	}))

	cp, err := store.LatestForPhase(s.ctx, run.ID, domain.PhaseLicenses)
	s.Require().NoError(err)
	s.Require().NotNil(cp)
	s.Equal(int64(4), cp.Progress)

	cp, err = store.LatestForPhase(s.ctx, run.ID, domain.PhaseUserLicenses)
	s.NoError(err)
	s.Nil(cp)
}

func (s *SQLiteStoreSuite) TestCheckpointStore_RejectsNegativeProgress() {
	store := NewCheckpointStore(s.db)
	run := s.startRun()

	err := store.Record(s.ctx, &domain.Checkpoint{RunID: run.ID, Phase: domain.PhaseLicenses, Progress: -1})
	s.Error(err)
}

func (s *SQLiteStoreSuite) TestCheckpointStore_UnknownRunViolatesForeignKey() {
	store := NewCheckpointStore(s.db)

	err := store.Record(s.ctx, &domain.Checkpoint{RunID: 999, Phase: domain.PhaseLicenses})
	s.Error(err)
}

func (s *SQLiteStoreSuite) TestProgressStore_Latest() {
	store := NewProgressStore(s.db)
	run := s.startRun()

	entry, err := store.Latest(s.ctx, run.ID)
	s.NoError(err)
	s.Nil(entry)

	s.Require().NoError(store.Record(s.ctx, &domain.ProgressEntry{
		RunID: run.ID, Phase: domain.PhaseUserActivity, Progress: 100, Message: "Collected 100 users",
	}))
	s.Require().NoError(store.Record(s.ctx, &domain.ProgressEntry{
		RunID: run.ID, Phase: domain.PhaseUserActivity, Progress: 300, Total: utils.Ptr(int64(300)),
		Message: "Collected 300 users",
	}))

	entry, err = store.Latest(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.Equal(int64(300), entry.Progress)
	s.Equal("Collected 300 users", entry.Message)
	s.Require().NotNil(entry.Total)
	s.Equal(int64(300), *entry.Total)
}

func (s *SQLiteStoreSuite) TestRetryStore_ListByRun() {
	store := NewRetryStore(s.db)
	run := s.startRun()

	for attempt := 1; attempt <= 3; attempt++ {
		s.Require().NoError(store.Record(s.ctx, &domain.RetryRecord{
			RunID:       run.ID,
			Endpoint:    "/users",
			Attempt:     attempt,
			DelayMillis: int64(1000 << (attempt - 1)),
			Reason:      "rate limited (429)",
		}))
	}

	records, err := store.ListByRun(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(1, records[0].Attempt)
	s.Equal(time.Second, records[0].Delay())
	s.Equal(4*time.Second, records[2].Delay())
}

func (s *SQLiteStoreSuite) TestUserActivityStore_UpsertIsIdempotent() {
	store := NewUserActivityStore(s.db)
	run := s.startRun()

	signIn := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	users := []domain.UserActivity{
		{UserPrincipalName: "bob@contoso.com"},
		{UserPrincipalName: "alice@contoso.com", LastSignInAt: &signIn},
	}

	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, users))
	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, users))

	count, err := store.Count(s.ctx, run.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	stored, err := store.ListByRun(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Require().Len(stored, 2)
	s.Equal("alice@contoso.com", stored[0].UserPrincipalName)
	s.Require().NotNil(stored[0].LastSignInAt)
	s.True(signIn.Equal(*stored[0].LastSignInAt))
	s.Nil(stored[1].LastSignInAt)
}

func (s *SQLiteStoreSuite) TestUserActivityStore_LastWriteWins() {
	store := NewUserActivityStore(s.db)
	run := s.startRun()

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, []domain.UserActivity{
		{UserPrincipalName: "alice@contoso.com", LastSignInAt: &first},
	}))
	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, []domain.UserActivity{
		{UserPrincipalName: "alice@contoso.com", LastSignInAt: &first},
		{UserPrincipalName: "alice@contoso.com", LastSignInAt: &second},
	}))

	stored, err := store.ListByRun(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	s.True(second.Equal(*stored[0].LastSignInAt))
}

func (s *SQLiteStoreSuite) TestUserActivityStore_ListPrincipalNames() {
	store := NewUserActivityStore(s.db)
	run := s.startRun()

	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, []domain.UserActivity{
		{UserPrincipalName: "carol@contoso.com"},
		{UserPrincipalName: "alice@contoso.com"},
		{UserPrincipalName: "bob@contoso.com"},
	}))

	names, err := store.ListPrincipalNames(s.ctx, run.ID, 1, 10)
	s.NoError(err)
	s.Equal([]string{"bob@contoso.com", "carol@contoso.com"}, names)

	names, err = store.ListPrincipalNames(s.ctx, run.ID, 0, 1)
	s.NoError(err)
	s.Equal([]string{"alice@contoso.com"}, names)
}

func (s *SQLiteStoreSuite) TestUserActivityStore_LargeBatchIsChunked() {
	store := NewUserActivityStore(s.db)
	run := s.startRun()

	users := make([]domain.UserActivity, 0, batchSize+25)
	for i := 0; i < batchSize+25; i++ {
		users = append(users, domain.UserActivity{
			UserPrincipalName: fmt.Sprintf("user%04d@contoso.com", i),
		})
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, users))

	count, err := store.Count(s.ctx, run.ID)
	s.NoError(err)
	s.Equal(int64(batchSize+25), count)
}

func (s *SQLiteStoreSuite) TestLicenseStore_UpsertBatchAndAssignments() {
	store := NewLicenseStore(s.db)
	run := s.startRun()

	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, []domain.License{
		{SkuID: "sku-e3", SkuPartNumber: "SPE_E3", Total: 50, Assigned: 40, Available: 10},
	}))
	s.Require().NoError(store.UpsertBatch(s.ctx, run.ID, []domain.License{
		{SkuID: "sku-e3", SkuPartNumber: "SPE_E3", Total: 50, Assigned: 45, Available: 5},
		{SkuID: "sku-bi", SkuPartNumber: "POWER_BI_PRO", Total: 10, Assigned: 2, Available: 8},
	}))

	licenses, err := store.ListByRun(s.ctx, run.ID)
	s.Require().NoError(err)
	s.Require().Len(licenses, 2)
	s.Equal("sku-bi", licenses[0].SkuID)
	s.Equal(int64(45), licenses[1].Assigned)

	assignments := []domain.UserLicense{
		{UserPrincipalName: "alice@contoso.com", SkuID: "sku-e3"},
		{UserPrincipalName: "alice@contoso.com", SkuID: "sku-bi"},
	}
	s.Require().NoError(store.UpsertAssignments(s.ctx, run.ID, assignments))
	s.Require().NoError(store.UpsertAssignments(s.ctx, run.ID, assignments))

	count, err := store.CountAssignments(s.ctx, run.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	skus, err := store.DistinctSkus(s.ctx)
	s.Require().NoError(err)
	s.Len(skus, 2)
}

func (s *SQLiteStoreSuite) TestPriceStore_ReplaceAll() {
	store := NewPriceStore(s.db)
	tm := NewTransactionManager(s.db)
	now := time.Now().UTC()

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.ReplaceAll(ctx, []domain.Price{
			{SkuID: "sku-e3", SkuName: "SPE_E3", MonthlyCost: decimal.RequireFromString("36.00"), LastUpdated: now},
			{SkuID: "sku-x", SkuName: "MYSTERY", MonthlyCost: decimal.Zero, LastUpdated: now},
		})
	})
	s.Require().NoError(err)

	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.ReplaceAll(ctx, []domain.Price{
			{SkuID: "sku-e3", SkuName: "SPE_E3", MonthlyCost: decimal.RequireFromString("39.50"), LastUpdated: now},
		})
	})
	s.Require().NoError(err)

	prices, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(prices, 1)
	s.True(decimal.RequireFromString("39.50").Equal(prices[0].MonthlyCost))
}

func (s *SQLiteStoreSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	runs := NewRunStore(s.db)

	var runID int64
	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		run, err := runs.Start(ctx)
		if err != nil {
			return err
		}
		runID = run.ID
		return context.Canceled
	})
	s.ErrorIs(err, context.Canceled)

	_, err = runs.Get(s.ctx, runID)
	s.ErrorIs(err, domain.ErrRunNotFound)
}

func (s *SQLiteStoreSuite) TestTransaction_Nested() {
	tm := NewTransactionManager(s.db)
	runs := NewRunStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return tm.WithTransaction(ctx, func(ctx context.Context) error {
			_, err := runs.Start(ctx)
			return err
		})
	})
	s.Require().NoError(err)

	list, err := runs.List(s.ctx, 5)
	s.NoError(err)
	s.Len(list, 1)
}

func (s *SQLiteStoreSuite) TestTruncate() {
	s.Equal("abc", truncate("abc", 5))
	s.Equal("ab", truncate("abc", 2))
	s.Equal("żó", truncate("żółw", 2))
}

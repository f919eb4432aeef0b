package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"m365_collector/internal/domain"
	"m365_collector/internal/service/mocks"
	"m365_collector/testdata/utils"
)

type StatusServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	runs        *mocks.MockRunStore
	progress    *mocks.MockProgressStore
	checkpoints *mocks.MockCheckpointStore
	retries     *mocks.MockRetryStore
	service     *StatusService
}

func (s *StatusServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.runs = mocks.NewMockRunStore(s.ctrl)
	s.progress = mocks.NewMockProgressStore(s.ctrl)
	s.checkpoints = mocks.NewMockCheckpointStore(s.ctrl)
	s.retries = mocks.NewMockRetryStore(s.ctrl)
	s.service = NewStatusService(s.runs, s.progress, s.checkpoints, s.retries)
}

func (s *StatusServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}

func (s *StatusServiceTestSuite) TestGetStatus_UnknownTotal() {
	started := time.Now().Add(-time.Minute)
	s.runs.EXPECT().Get(s.ctx, int64(1)).Return(&domain.CollectionRun{ID: 1, Status: domain.RunRunning, StartedAt: started}, nil)
	s.progress.EXPECT().Latest(s.ctx, int64(1)).Return(&domain.ProgressEntry{
		Phase: domain.PhaseUserActivity, Progress: 200, Message: "Collected 200 users", CreatedAt: time.Now(),
	}, nil)

	status, err := s.service.GetStatus(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(domain.PhaseUserActivity, status.CurrentPhase)
	s.Equal(int64(200), status.Progress)
	s.Nil(status.Total)
	s.Nil(status.Percentage)
	s.True(status.UpdatedAt.After(started))
}

func (s *StatusServiceTestSuite) TestGetStatus_Percentage() {
	s.runs.EXPECT().Get(s.ctx, int64(1)).Return(&domain.CollectionRun{ID: 1, Status: domain.RunRunning}, nil)
	s.progress.EXPECT().Latest(s.ctx, int64(1)).Return(&domain.ProgressEntry{
		Phase: domain.PhaseUserLicenses, Progress: 1, Total: utils.Ptr(int64(3)),
	}, nil)

	status, err := s.service.GetStatus(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().NotNil(status.Percentage)
	s.Equal(33.3, *status.Percentage)
}

func (s *StatusServiceTestSuite) TestGetStatus_NoProgressYet() {
	s.runs.EXPECT().Get(s.ctx, int64(1)).Return(&domain.CollectionRun{ID: 1, Status: domain.RunRunning}, nil)
	s.progress.EXPECT().Latest(s.ctx, int64(1)).Return(nil, nil)

	status, err := s.service.GetStatus(s.ctx, 1)

	s.Require().NoError(err)
	s.Empty(status.CurrentPhase)
	s.Nil(status.Percentage)
}

func (s *StatusServiceTestSuite) TestLatestStatus_NoRuns() {
	s.runs.EXPECT().List(s.ctx, 1).Return(nil, nil)

	_, err := s.service.LatestStatus(s.ctx)
	s.ErrorIs(err, domain.ErrRunNotFound)
}

func (s *StatusServiceTestSuite) TestCheckpoint_UnknownRun() {
	s.runs.EXPECT().Get(s.ctx, int64(9)).Return(nil, domain.ErrRunNotFound)

	_, err := s.service.Checkpoint(s.ctx, 9)
	s.ErrorIs(err, domain.ErrRunNotFound)
}

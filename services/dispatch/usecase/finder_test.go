package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/dispatch"
	"github.com/takerapp/taker-go/services/dispatch/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			CellPrecision:     6,
			RingK:             2,
			CandidateLimit:    20,
			OfferTTLSeconds:   60,
			WaitWindowSeconds: 62,
			RetryDelaySeconds: 3,
			ReminderLeadMin:   15,
			ConflictWindowMin: 15,
			BalanceFloor:      -100000,
			AverageSpeedKmh:   30,
		},
		Scheduler: models.SchedulerConfig{
			Concurrency:    10,
			PollIntervalMs: 500,
			MaxAttempts:    3,
			BackoffBaseSec: 2,
		},
	}
}

type dispatchUCMocks struct {
	tripRepo      *mocks.MockTripRepo
	shoemakerRepo *mocks.MockShoemakerRepo
	offers        *mocks.MockOfferStore
	gw            *mocks.MockDispatchGW
	jobs          *mocks.MockJobs
}

func newDispatchUC(t *testing.T) (*DispatchUC, dispatchUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := dispatchUCMocks{
		tripRepo:      mocks.NewMockTripRepo(ctrl),
		shoemakerRepo: mocks.NewMockShoemakerRepo(ctrl),
		offers:        mocks.NewMockOfferStore(ctrl),
		gw:            mocks.NewMockDispatchGW(ctrl),
		jobs:          mocks.NewMockJobs(ctrl),
	}
	uc := NewDispatchUC(testConfig(), m.tripRepo, m.shoemakerRepo, m.offers, m.gw, m.jobs, nil)
	return uc, m, ctrl
}

func TestFindCandidates_RanksByTravelTime(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", Latitude: -6.2000, Longitude: 106.8000}

	far := &models.Shoemaker{ID: "sm-far", Latitude: -6.2500, Longitude: 106.8500}
	near := &models.Shoemaker{ID: "sm-near", Latitude: -6.2010, Longitude: 106.8010}

	m.shoemakerRepo.EXPECT().FindAvailableInCells(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Shoemaker{far, near}, nil)
	m.shoemakerRepo.EXPECT().HasScheduledTripBetween(gomock.Any(), "sm-far", gomock.Any(), gomock.Any()).
		Return(false, nil)
	m.shoemakerRepo.EXPECT().HasScheduledTripBetween(gomock.Any(), "sm-near", gomock.Any(), gomock.Any()).
		Return(false, nil)

	candidates, err := uc.findCandidates(context.Background(), trip, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "sm-near", candidates[0].Shoemaker.ID)
	assert.Equal(t, "sm-far", candidates[1].Shoemaker.ID)
	assert.Less(t, candidates[0].TimeMinutes, candidates[1].TimeMinutes)
	assert.Greater(t, candidates[0].DistanceKm, 0.0)
}

func TestFindCandidates_IDBreaksTies(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", Latitude: -6.2, Longitude: 106.8}

	// same spot, ordering must stay deterministic
	second := &models.Shoemaker{ID: "sm-b", Latitude: -6.21, Longitude: 106.81}
	first := &models.Shoemaker{ID: "sm-a", Latitude: -6.21, Longitude: 106.81}

	m.shoemakerRepo.EXPECT().FindAvailableInCells(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Shoemaker{second, first}, nil)
	m.shoemakerRepo.EXPECT().HasScheduledTripBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).Times(2)

	candidates, err := uc.findCandidates(context.Background(), trip, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "sm-a", candidates[0].Shoemaker.ID)
	assert.Equal(t, "sm-b", candidates[1].Shoemaker.ID)
}

func TestFindCandidates_DropsScheduleConflicts(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", Latitude: -6.2, Longitude: 106.8}

	busy := &models.Shoemaker{ID: "sm-busy", Latitude: -6.21, Longitude: 106.81}
	free := &models.Shoemaker{ID: "sm-free", Latitude: -6.22, Longitude: 106.82}

	m.shoemakerRepo.EXPECT().FindAvailableInCells(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Shoemaker{busy, free}, nil)
	m.shoemakerRepo.EXPECT().HasScheduledTripBetween(gomock.Any(), "sm-busy", gomock.Any(), gomock.Any()).
		Return(true, nil)
	m.shoemakerRepo.EXPECT().HasScheduledTripBetween(gomock.Any(), "sm-free", gomock.Any(), gomock.Any()).
		Return(false, nil)

	candidates, err := uc.findCandidates(context.Background(), trip, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "sm-free", candidates[0].Shoemaker.ID)
}

func TestFindCandidates_CashTripEnforcesBalanceFloor(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{
		ID:            "trip-1",
		Latitude:      -6.2,
		Longitude:     106.8,
		Fee:           10000,
		PaymentMethod: models.PaymentMethodOffline,
	}

	var captured dispatch.CandidateQuery
	m.shoemakerRepo.EXPECT().FindAvailableInCells(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, q dispatch.CandidateQuery) ([]*models.Shoemaker, error) {
			captured = q
			return nil, nil
		})

	_, err := uc.findCandidates(context.Background(), trip, []string{"sm-prev"})
	require.NoError(t, err)

	assert.True(t, captured.RequireBalance)
	assert.Equal(t, int64(-90000), captured.MinBalance)
	assert.Equal(t, []string{"sm-prev"}, captured.Exclude)
	assert.Equal(t, "trip-1", captured.TripID)
	assert.False(t, captured.Scheduled)
}

func TestFindCandidates_ScheduledTripUsesScheduleWindow(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	scheduleTime := int64(1900000000000)
	trip := &models.Trip{
		ID:           "trip-1",
		Latitude:     -6.2,
		Longitude:    106.8,
		ScheduleTime: scheduleTime,
	}
	window := int64(15 * 60 * 1000)

	shoemaker := &models.Shoemaker{ID: "sm-1", Latitude: -6.21, Longitude: 106.81}
	m.shoemakerRepo.EXPECT().FindAvailableInCells(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Shoemaker{shoemaker}, nil)
	m.shoemakerRepo.EXPECT().HasScheduledTripBetween(gomock.Any(), "sm-1", scheduleTime-window, scheduleTime+window).
		Return(false, nil)

	candidates, err := uc.findCandidates(context.Background(), trip, nil)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/trips"
	"github.com/takerapp/taker-go/services/trips/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			CellPrecision:     6,
			RingK:             12,
			CandidateLimit:    20,
			OfferTTLSeconds:   60,
			WaitWindowSeconds: 62,
			RetryDelaySeconds: 3,
			ReminderLeadMin:   15,
			ConflictWindowMin: 15,
			BalanceFloor:      -100000,
			AverageSpeedKmh:   30,
		},
	}
}

type tripUCMocks struct {
	tripRepo   *mocks.MockTripRepo
	walletRepo *mocks.MockWalletRepo
	gw         *mocks.MockTripGW
	jobs       *mocks.MockJobs
}

func newTripUC(t *testing.T) (*TripUC, tripUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := tripUCMocks{
		tripRepo:   mocks.NewMockTripRepo(ctrl),
		walletRepo: mocks.NewMockWalletRepo(ctrl),
		gw:         mocks.NewMockTripGW(ctrl),
		jobs:       mocks.NewMockJobs(ctrl),
	}
	uc := NewTripUC(testConfig(), m.tripRepo, m.walletRepo, m.gw, m.jobs, nil)
	return uc, m, ctrl
}

func TestCreateTrip_ImmediateWalletPayment(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	req := models.CreateTripRequest{
		CustomerID:    "cust-1",
		Latitude:      -6.2,
		Longitude:     106.8,
		Address:       "Jl. Sudirman 1",
		TotalPrice:    50000,
		Income:        40000,
		PaymentMethod: models.PaymentMethodWallet,
	}

	m.tripRepo.EXPECT().HasActiveTrip(gomock.Any(), "cust-1").Return(false, nil)
	m.walletRepo.EXPECT().GetBalance(gomock.Any(), "cust-1").Return(int64(60000), nil)

	var created *models.Trip
	m.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			created = trip
			return nil
		})
	m.jobs.EXPECT().Enqueue(gomock.Any(), constants.JobFindClosestShoemakers, gomock.Any(), gomock.Any()).
		Return("job-1", nil)
	m.tripRepo.EXPECT().UpdateJobID(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tripID string, jobID *string) error {
			require.NotNil(t, jobID)
			assert.Equal(t, "QUEUE-"+tripID, *jobID)
			return nil
		})
	m.gw.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripCreated, gomock.Any())

	resp, err := uc.CreateTrip(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.TripStatusSearching, resp.Status)
	assert.Equal(t, models.PaymentStatusPaid, resp.PaymentState)
	assert.NotEmpty(t, resp.OrderID)

	require.NotNil(t, created)
	assert.Equal(t, int64(10000), created.Fee)
	assert.Equal(t, models.PaymentStatusPaid, created.PaymentStatus)
	assert.False(t, created.IsScheduled())
}

func TestCreateTrip_InsufficientBalance(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	m.tripRepo.EXPECT().HasActiveTrip(gomock.Any(), "cust-1").Return(false, nil)
	m.walletRepo.EXPECT().GetBalance(gomock.Any(), "cust-1").Return(int64(10000), nil)

	_, err := uc.CreateTrip(context.Background(), models.CreateTripRequest{
		CustomerID:    "cust-1",
		TotalPrice:    50000,
		Income:        40000,
		PaymentMethod: models.PaymentMethodWallet,
	})
	assert.ErrorIs(t, err, trips.ErrInsufficientBalance)
}

func TestCreateTrip_ActiveTripExists(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	m.tripRepo.EXPECT().HasActiveTrip(gomock.Any(), "cust-1").Return(true, nil)

	_, err := uc.CreateTrip(context.Background(), models.CreateTripRequest{
		CustomerID:    "cust-1",
		TotalPrice:    50000,
		Income:        40000,
		PaymentMethod: models.PaymentMethodOffline,
	})
	assert.ErrorIs(t, err, trips.ErrActiveTripExists)
}

func TestCreateTrip_RejectsInvalidPricing(t *testing.T) {
	uc, _, ctrl := newTripUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateTrip(context.Background(), models.CreateTripRequest{
		CustomerID: "cust-1",
		TotalPrice: 10000,
		Income:     20000, // income above total price
	})
	assert.Error(t, err)
}

func TestCreateTrip_RejectsPastScheduleTime(t *testing.T) {
	uc, _, ctrl := newTripUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateTrip(context.Background(), models.CreateTripRequest{
		CustomerID:   "cust-1",
		TotalPrice:   50000,
		Income:       40000,
		ScheduleTime: time.Now().Add(-time.Hour).UnixMilli(),
	})
	assert.Error(t, err)
}

func TestCreateTrip_ScheduledQueuesDelayedDispatch(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	scheduleTime := time.Now().Add(2 * time.Hour).UnixMilli()

	m.tripRepo.EXPECT().HasActiveTrip(gomock.Any(), "cust-1").Return(false, nil)
	m.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)

	m.jobs.EXPECT().Enqueue(gomock.Any(), constants.JobFindClosestShoemakers, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("job-1", nil)
	jobID := "QUEUE-" // deterministic prefix, trip id is random
	m.tripRepo.EXPECT().UpdateJobID(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, id *string) error {
			require.NotNil(t, id)
			assert.Contains(t, *id, jobID)
			return nil
		})

	m.gw.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripCreated, gomock.Any())

	resp, err := uc.CreateTrip(context.Background(), models.CreateTripRequest{
		CustomerID:    "cust-1",
		TotalPrice:    50000,
		Income:        40000,
		PaymentMethod: models.PaymentMethodOffline,
		ScheduleTime:  scheduleTime,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, resp.PaymentState)
}

func TestCancelTrip_Searching(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{
		ID:         "trip-1",
		CustomerID: "cust-1",
		Status:     models.TripStatusSearching,
	}

	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").Return(trip, nil)
	m.tripRepo.EXPECT().CancelTrip(gomock.Any(), trip, "changed my mind").Return(nil)
	m.jobs.EXPECT().Cancel(gomock.Any(), "QUEUE-trip-1").Return(nil)
	m.gw.EXPECT().LeaveTripRoom("cust-1", "trip-1")
	m.gw.EXPECT().PublishTripStatus(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripStatus, gomock.Any())

	err := uc.CancelTrip(context.Background(), models.CancelTripRequest{
		TripID:     "trip-1",
		CustomerID: "cust-1",
		Reason:     "changed my mind",
	})
	assert.NoError(t, err)
}

func TestCancelTrip_AcceptedNotifiesShoemaker(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	shoemakerID := "sm-1"
	trip := &models.Trip{
		ID:          "trip-1",
		CustomerID:  "cust-1",
		ShoemakerID: &shoemakerID,
		Status:      models.TripStatusAccepted,
	}

	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").Return(trip, nil)
	m.tripRepo.EXPECT().CancelTrip(gomock.Any(), trip, gomock.Any()).Return(nil)
	m.jobs.EXPECT().Cancel(gomock.Any(), "QUEUE-trip-1").Return(nil)
	m.gw.EXPECT().NotifyUser("sm-1", constants.EventShoemakerCanceled, gomock.Any())
	m.tripRepo.EXPECT().GetShoemaker(gomock.Any(), "sm-1").
		Return(&models.Shoemaker{ID: "sm-1", FCMToken: "tok"}, nil)
	m.gw.EXPECT().PushToToken(gomock.Any(), "tok", gomock.Any(), gomock.Any(), gomock.Any())
	m.gw.EXPECT().LeaveTripRoom("sm-1", "trip-1")
	m.gw.EXPECT().LeaveTripRoom("cust-1", "trip-1")
	m.gw.EXPECT().PublishTripStatus(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripStatus, gomock.Any())

	err := uc.CancelTrip(context.Background(), models.CancelTripRequest{
		TripID:     "trip-1",
		CustomerID: "cust-1",
	})
	assert.NoError(t, err)
}

func TestCancelTrip_InProgressRejected(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusInProgress}, nil)

	err := uc.CancelTrip(context.Background(), models.CancelTripRequest{
		TripID:     "trip-1",
		CustomerID: "cust-1",
	})
	assert.ErrorIs(t, err, trips.ErrInvalidTransition)
}

func TestUpdateTripStatus_WrongShoemaker(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	owner := "sm-1"
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", ShoemakerID: &owner, Status: models.TripStatusAccepted}, nil)

	err := uc.UpdateTripStatus(context.Background(), "trip-1", "sm-2", models.TripStatusInProgress)
	assert.ErrorIs(t, err, trips.ErrNotTripOwner)
}

func TestUpdateTripStatus_InvalidTransition(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	owner := "sm-1"
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", ShoemakerID: &owner, Status: models.TripStatusAccepted}, nil)

	err := uc.UpdateTripStatus(context.Background(), "trip-1", "sm-1", models.TripStatusCompleted)
	assert.ErrorIs(t, err, trips.ErrInvalidTransition)
}

func TestUpdateTripStatus_CompleteSettlesAndLeavesRooms(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	owner := "sm-1"
	trip := &models.Trip{
		ID:          "trip-1",
		CustomerID:  "cust-1",
		ShoemakerID: &owner,
		Status:      models.TripStatusMeeting,
	}

	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.tripRepo.EXPECT().CompleteTrip(gomock.Any(), trip).Return(nil)
	m.gw.EXPECT().PublishTripStatus(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyTripRoom("trip-1", constants.EventTripStatus, gomock.Any())
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripStatus, gomock.Any())
	m.gw.EXPECT().LeaveTripRoom("cust-1", "trip-1")
	m.gw.EXPECT().LeaveTripRoom("sm-1", "trip-1")

	err := uc.UpdateTripStatus(context.Background(), "trip-1", "sm-1", models.TripStatusCompleted)
	assert.NoError(t, err)
}

func TestRateTrip_Guards(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	err := uc.RateTrip(context.Background(), models.RateTripRequest{TripID: "trip-1", Rating: 6})
	assert.Error(t, err)

	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusMeeting}, nil)
	err = uc.RateTrip(context.Background(), models.RateTripRequest{
		TripID: "trip-1", CustomerID: "cust-1", Rating: 5,
	})
	assert.ErrorIs(t, err, trips.ErrTripNotCompleted)

	rating := 4
	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusCompleted, Rating: &rating}, nil)
	err = uc.RateTrip(context.Background(), models.RateTripRequest{
		TripID: "trip-1", CustomerID: "cust-1", Rating: 5,
	})
	assert.ErrorIs(t, err, trips.ErrAlreadyRated)
}

func TestRateTrip_Completed(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", Status: models.TripStatusCompleted}
	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").Return(trip, nil)
	m.tripRepo.EXPECT().RateTrip(gomock.Any(), trip, 5, "great work").Return(nil)

	err := uc.RateTrip(context.Background(), models.RateTripRequest{
		TripID: "trip-1", CustomerID: "cust-1", Rating: 5, Comment: "great work",
	})
	assert.NoError(t, err)
}

func TestGetPaymentStatus(t *testing.T) {
	uc, m, ctrl := newTripUC(t)
	defer ctrl.Finish()

	m.tripRepo.EXPECT().GetTripForCustomer(gomock.Any(), "trip-1", "cust-1").
		Return(&models.Trip{ID: "trip-1", PaymentStatus: models.PaymentStatusRefunded}, nil)

	status, err := uc.GetPaymentStatus(context.Background(), "trip-1", "cust-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, status)
}

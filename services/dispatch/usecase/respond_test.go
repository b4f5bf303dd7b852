package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/models"
	"github.com/takerapp/taker-go/services/dispatch"
)

func TestHandleAccept_WinnerTakesTrip(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{
		ID:         "trip-1",
		OrderID:    "T240101123456",
		CustomerID: "cust-1",
		Status:     models.TripStatusSearching,
		Latitude:   -6.2,
		Longitude:  106.8,
	}

	m.offers.EXPECT().WasOffered(gomock.Any(), "trip-1", "sm-1").Return(true, nil)
	m.offers.EXPECT().MarkInteracted(gomock.Any(), "trip-1", "sm-1").Return(nil)
	m.offers.EXPECT().ClearPendingOffer(gomock.Any(), "sm-1").Return(nil)
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.offers.EXPECT().TryClaimWinner(gomock.Any(), "trip-1", "sm-1").Return(true, nil)
	m.tripRepo.EXPECT().AcceptTrip(gomock.Any(), trip, "sm-1").
		DoAndReturn(func(_ context.Context, tr *models.Trip, shoemakerID string) error {
			tr.Status = models.TripStatusAccepted
			tr.ShoemakerID = &shoemakerID
			return nil
		})
	m.offers.EXPECT().SetRoundStatus(gomock.Any(), "trip-1", constants.RoundStatusAccepted).Return(nil)
	m.offers.EXPECT().OfferedShoemakers(gomock.Any(), "trip-1").Return([]string{"sm-1", "sm-2"}, nil)
	m.offers.EXPECT().CloseRound(gomock.Any(), "trip-1", []string{"sm-1", "sm-2"}).Return(nil)

	m.shoemakerRepo.EXPECT().GetShoemaker(gomock.Any(), "sm-1").
		Return(&models.Shoemaker{ID: "sm-1", FullName: "Budi", Latitude: -6.21, Longitude: 106.81}, nil)
	m.gw.EXPECT().NotifyUser("cust-1", constants.EventCustomerMatched, gomock.Any())
	m.tripRepo.EXPECT().GetCustomer(gomock.Any(), "cust-1").
		Return(&models.Customer{ID: "cust-1", FCMToken: "tok"}, nil)
	m.gw.EXPECT().PushTo(gomock.Any(), "tok", gomock.Any(), gomock.Any(), gomock.Any())
	m.tripRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)

	m.gw.EXPECT().JoinTripRoom("cust-1", "trip-1")
	m.gw.EXPECT().JoinTripRoom("sm-1", "trip-1")
	m.gw.EXPECT().PublishTripStatus(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripStatus, gomock.Any())
	m.tripRepo.EXPECT().UpdateJobID(gomock.Any(), "trip-1", nil).Return(nil)

	err := uc.HandleAccept(context.Background(), "trip-1", "sm-1")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusAccepted, trip.Status)
}

func TestHandleAccept_ScheduledArmsReminder(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{
		ID:           "trip-1",
		OrderID:      "T240101123456",
		CustomerID:   "cust-1",
		Status:       models.TripStatusSearching,
		ScheduleTime: time.Now().Add(2 * time.Hour).UnixMilli(),
	}

	m.offers.EXPECT().WasOffered(gomock.Any(), "trip-1", "sm-1").Return(true, nil)
	m.offers.EXPECT().MarkInteracted(gomock.Any(), "trip-1", "sm-1").Return(nil)
	m.offers.EXPECT().ClearPendingOffer(gomock.Any(), "sm-1").Return(nil)
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.offers.EXPECT().TryClaimWinner(gomock.Any(), "trip-1", "sm-1").Return(true, nil)
	m.tripRepo.EXPECT().AcceptTrip(gomock.Any(), trip, "sm-1").Return(nil)
	m.offers.EXPECT().SetRoundStatus(gomock.Any(), "trip-1", constants.RoundStatusAccepted).Return(nil)
	m.offers.EXPECT().OfferedShoemakers(gomock.Any(), "trip-1").Return([]string{"sm-1"}, nil)
	m.offers.EXPECT().CloseRound(gomock.Any(), "trip-1", []string{"sm-1"}).Return(nil)

	m.shoemakerRepo.EXPECT().GetShoemaker(gomock.Any(), "sm-1").
		Return(&models.Shoemaker{ID: "sm-1", FullName: "Budi"}, nil)
	m.gw.EXPECT().NotifyUser("cust-1", constants.EventCustomerMatched, gomock.Any())
	m.tripRepo.EXPECT().GetCustomer(gomock.Any(), "cust-1").
		Return(&models.Customer{ID: "cust-1", FCMToken: "tok"}, nil)
	m.gw.EXPECT().PushTo(gomock.Any(), "tok", gomock.Any(), gomock.Any(), gomock.Any())
	m.tripRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)

	// no room join yet, the reminder fires ahead of the time slot instead
	m.jobs.EXPECT().Enqueue(gomock.Any(), constants.JobTripReminder, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("NOTICE-trip-1", nil)
	m.gw.EXPECT().PublishTripStatus(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().NotifyAdmins(constants.EventAdminTripStatus, gomock.Any())
	m.tripRepo.EXPECT().UpdateJobID(gomock.Any(), "trip-1", nil).Return(nil)

	err := uc.HandleAccept(context.Background(), "trip-1", "sm-1")
	assert.NoError(t, err)
}

func TestHandleAccept_NotOfferedGetsTaken(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	m.offers.EXPECT().WasOffered(gomock.Any(), "trip-1", "sm-1").Return(false, nil)
	m.gw.EXPECT().NotifyUser("sm-1", constants.EventShoemakerTripTaken, gomock.Any())

	err := uc.HandleAccept(context.Background(), "trip-1", "sm-1")
	assert.NoError(t, err)
}

func TestHandleAccept_LosesClaim(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	m.offers.EXPECT().WasOffered(gomock.Any(), "trip-1", "sm-2").Return(true, nil)
	m.offers.EXPECT().MarkInteracted(gomock.Any(), "trip-1", "sm-2").Return(nil)
	m.offers.EXPECT().ClearPendingOffer(gomock.Any(), "sm-2").Return(nil)
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusSearching}, nil)
	m.offers.EXPECT().TryClaimWinner(gomock.Any(), "trip-1", "sm-2").Return(false, nil)
	m.gw.EXPECT().NotifyUser("sm-2", constants.EventShoemakerTripTaken, gomock.Any())

	err := uc.HandleAccept(context.Background(), "trip-1", "sm-2")
	assert.NoError(t, err)
}

func TestHandleAccept_CanceledBetweenClaimAndWrite(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", Status: models.TripStatusSearching}

	m.offers.EXPECT().WasOffered(gomock.Any(), "trip-1", "sm-1").Return(true, nil)
	m.offers.EXPECT().MarkInteracted(gomock.Any(), "trip-1", "sm-1").Return(nil)
	m.offers.EXPECT().ClearPendingOffer(gomock.Any(), "sm-1").Return(nil)
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.offers.EXPECT().TryClaimWinner(gomock.Any(), "trip-1", "sm-1").Return(true, nil)
	m.tripRepo.EXPECT().AcceptTrip(gomock.Any(), trip, "sm-1").Return(dispatch.ErrTripUnavailable)
	m.gw.EXPECT().NotifyUser("sm-1", constants.EventShoemakerCanceled, gomock.Any())

	err := uc.HandleAccept(context.Background(), "trip-1", "sm-1")
	assert.NoError(t, err)
}

// Concurrent accepts for the same trip must produce exactly one winner.
func TestHandleAccept_ConcurrentAcceptsSingleWinner(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	const contenders = 16

	var claimed int32
	m.offers.EXPECT().WasOffered(gomock.Any(), "trip-1", gomock.Any()).Return(true, nil).AnyTimes()
	m.offers.EXPECT().MarkInteracted(gomock.Any(), "trip-1", gomock.Any()).Return(nil).AnyTimes()
	m.offers.EXPECT().ClearPendingOffer(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").
		DoAndReturn(func(_ context.Context, _ string) (*models.Trip, error) {
			return &models.Trip{ID: "trip-1", CustomerID: "cust-1", Status: models.TripStatusSearching}, nil
		}).AnyTimes()
	m.offers.EXPECT().TryClaimWinner(gomock.Any(), "trip-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) (bool, error) {
			return atomic.CompareAndSwapInt32(&claimed, 0, 1), nil
		}).AnyTimes()

	var accepts int32
	m.tripRepo.EXPECT().AcceptTrip(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Trip, shoemakerID string) error {
			atomic.AddInt32(&accepts, 1)
			tr.Status = models.TripStatusAccepted
			tr.ShoemakerID = &shoemakerID
			return nil
		}).AnyTimes()

	// winner side effects
	m.offers.EXPECT().SetRoundStatus(gomock.Any(), "trip-1", constants.RoundStatusAccepted).Return(nil).AnyTimes()
	m.offers.EXPECT().OfferedShoemakers(gomock.Any(), "trip-1").Return([]string{}, nil).AnyTimes()
	m.offers.EXPECT().CloseRound(gomock.Any(), "trip-1", gomock.Any()).Return(nil).AnyTimes()
	m.shoemakerRepo.EXPECT().GetShoemaker(gomock.Any(), gomock.Any()).
		Return(&models.Shoemaker{ID: "sm-w"}, nil).AnyTimes()
	m.tripRepo.EXPECT().GetCustomer(gomock.Any(), "cust-1").
		Return(&models.Customer{ID: "cust-1"}, nil).AnyTimes()
	m.tripRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.tripRepo.EXPECT().UpdateJobID(gomock.Any(), "trip-1", nil).Return(nil).AnyTimes()
	m.gw.EXPECT().NotifyUser(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.gw.EXPECT().PushTo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.gw.EXPECT().JoinTripRoom(gomock.Any(), gomock.Any()).AnyTimes()
	m.gw.EXPECT().PublishTripStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.gw.EXPECT().NotifyAdmins(gomock.Any(), gomock.Any()).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n))
			_ = uc.HandleAccept(context.Background(), "trip-1", "sm-"+id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&accepts))
}

func TestHandleDecline_RecordsExclusion(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	m.offers.EXPECT().MarkInteracted(gomock.Any(), "trip-1", "sm-1").Return(nil)
	m.offers.EXPECT().ClearPendingOffer(gomock.Any(), "sm-1").Return(nil)

	var cancellation *models.TripCancellation
	m.tripRepo.EXPECT().AppendCancellation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.TripCancellation) error {
			cancellation = c
			return nil
		})

	err := uc.HandleDecline(context.Background(), "trip-1", "sm-1")
	require.NoError(t, err)

	require.NotNil(t, cancellation)
	assert.Equal(t, "trip-1", cancellation.TripID)
	assert.Equal(t, "sm-1", *cancellation.ShoemakerID)
}

func TestHandleReconnect_RedeliversPendingOffer(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	payload := &models.TripOfferPayload{TripID: "trip-1", OrderID: "T240101123456"}
	m.offers.EXPECT().PendingOffer(gomock.Any(), "sm-1").Return(payload, 30*time.Second, nil)

	var delivered *models.TripOfferPayload
	m.gw.EXPECT().OfferShoemaker("sm-1", gomock.Any()).
		DoAndReturn(func(_ string, p *models.TripOfferPayload) bool {
			delivered = p
			return true
		})

	err := uc.HandleReconnect(context.Background(), "sm-1")
	require.NoError(t, err)

	require.NotNil(t, delivered)
	assert.Equal(t, 30, delivered.RemainingSec)
}

func TestHandleReconnect_NoPendingOffer(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	m.offers.EXPECT().PendingOffer(gomock.Any(), "sm-1").Return(nil, time.Duration(0), nil)

	err := uc.HandleReconnect(context.Background(), "sm-1")
	assert.NoError(t, err)
}

func TestHandleReconnect_SkipsExpiringOffer(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	payload := &models.TripOfferPayload{TripID: "trip-1"}
	m.offers.EXPECT().PendingOffer(gomock.Any(), "sm-1").Return(payload, time.Second, nil)

	err := uc.HandleReconnect(context.Background(), "sm-1")
	assert.NoError(t, err)
}

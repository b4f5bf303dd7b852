package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

func TestSendReminder_NotifiesBothParties(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	shoemakerID := "sm-1"
	trip := &models.Trip{
		ID:           "trip-1",
		OrderID:      "T240101123456",
		CustomerID:   "cust-1",
		ShoemakerID:  &shoemakerID,
		Status:       models.TripStatusAccepted,
		ScheduleTime: time.Now().Add(15 * time.Minute).UnixMilli(),
	}

	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	m.gw.EXPECT().NotifyUser("cust-1", constants.EventCustomerReminder, gomock.Any())
	m.tripRepo.EXPECT().GetCustomer(gomock.Any(), "cust-1").
		Return(&models.Customer{ID: "cust-1", FCMToken: "ctok"}, nil)
	m.gw.EXPECT().PushTo(gomock.Any(), "ctok", gomock.Any(), gomock.Any(), gomock.Any())
	m.tripRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)

	m.gw.EXPECT().NotifyUser("sm-1", constants.EventShoemakerReminder, gomock.Any())
	m.shoemakerRepo.EXPECT().GetShoemaker(gomock.Any(), "sm-1").
		Return(&models.Shoemaker{ID: "sm-1", FCMToken: "stok"}, nil)
	m.gw.EXPECT().PushTo(gomock.Any(), "stok", gomock.Any(), gomock.Any(), gomock.Any())
	m.tripRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)

	m.gw.EXPECT().JoinTripRoom("cust-1", "trip-1")
	m.gw.EXPECT().JoinTripRoom("sm-1", "trip-1")

	err := uc.SendReminder(context.Background(), "trip-1")
	assert.NoError(t, err)
}

func TestSendReminder_UnassignedOnlyNotifiesCustomer(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{
		ID:           "trip-1",
		CustomerID:   "cust-1",
		Status:       models.TripStatusSearching,
		ScheduleTime: time.Now().Add(15 * time.Minute).UnixMilli(),
	}

	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.gw.EXPECT().NotifyUser("cust-1", constants.EventCustomerReminder, gomock.Any())
	m.tripRepo.EXPECT().GetCustomer(gomock.Any(), "cust-1").
		Return(&models.Customer{ID: "cust-1", FCMToken: "ctok"}, nil)
	m.gw.EXPECT().PushTo(gomock.Any(), "ctok", gomock.Any(), gomock.Any(), gomock.Any())
	m.tripRepo.EXPECT().SaveNotification(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.SendReminder(context.Background(), "trip-1")
	assert.NoError(t, err)
}

func TestSendReminder_SkipsInactiveTrip(t *testing.T) {
	uc, m, ctrl := newDispatchUC(t)
	defer ctrl.Finish()

	m.tripRepo.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusCustomerCancel}, nil)

	err := uc.SendReminder(context.Background(), "trip-1")
	assert.NoError(t, err)
}

package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supasport/booking-service/internal/domain"
	slotRepo "github.com/supasport/booking-service/internal/infra/storage/slot"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
	"github.com/supasport/booking-service/internal/service/reservations/models"
	"github.com/supasport/booking-service/pkg/ptr"
)

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testService(venues map[int64]*domain.Venue, reservations []*domain.Reservation, slots map[int64]*domain.Slot) *Service {
	return NewService(
		&fakeVenueRepo{venues: venues},
		&fakeReservationRepo{reservations: reservations},
		&fakeSlotRepo{slots: slots},
		noopLogger{},
	)
}

func TestGetUserReservations(t *testing.T) {
	venues := map[int64]*domain.Venue{
		1: {ID: 1, Name: "Arena Central", City: "Recife"},
	}
	slots := map[int64]*domain.Slot{
		55: {ID: 55, VenueID: 1, Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "08:00", Status: domain.SlotStatusReserved},
		56: {ID: 56, VenueID: 1, Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "09:00", Status: domain.SlotStatusReserved},
	}
	reservations := []*domain.Reservation{
		{ID: 1, UserID: 7, VenueID: 1, SlotID: 55, CreatedAt: time.Now()},
		{ID: 2, UserID: 7, VenueID: 1, SlotID: 56, CreatedAt: time.Now()},
		{ID: 3, UserID: 8, VenueID: 1, SlotID: 56, CreatedAt: time.Now()},
	}

	svc := testService(venues, reservations, slots)

	resp, err := svc.GetUserReservations(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "Arena Central", resp.Reservations[0].VenueName)
	assert.Equal(t, "2026-09-15", resp.Reservations[0].Date)
	assert.Equal(t, "08:00", resp.Reservations[0].StartTime)
}

func TestGetUserReservations_SkipsOrphanedSlot(t *testing.T) {
	venues := map[int64]*domain.Venue{1: {ID: 1, Name: "Arena Central"}}
	slots := map[int64]*domain.Slot{
		55: {ID: 55, VenueID: 1, Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "08:00"},
	}
	reservations := []*domain.Reservation{
		{ID: 1, UserID: 7, VenueID: 1, SlotID: 55},
		{ID: 2, UserID: 7, VenueID: 1, SlotID: 999}, // слот удален
	}

	svc := testService(venues, reservations, slots)

	resp, err := svc.GetUserReservations(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetUserReservations_InvalidUser(t *testing.T) {
	svc := testService(nil, nil, nil)

	_, err := svc.GetUserReservations(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPaymentCode(t *testing.T) {
	venues := map[int64]*domain.Venue{
		1: {
			ID:           1,
			Name:         "Arena Central",
			City:         "Recife",
			PricePerSlot: 150,
			PixKey:       ptr.Ptr("dono@quadra.com"),
		},
	}
	svc := testService(venues, nil, nil)

	resp, err := svc.PaymentCode(context.Background(), &models.PaymentCodeRequest{
		VenueID:   1,
		SlotCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, resp.Amount)
	assert.Equal(t, 2, resp.SlotCount)
	assert.True(t, strings.HasPrefix(resp.Payload, "000201"))
	assert.Contains(t, resp.Payload, "dono@quadra.com")
	assert.Contains(t, resp.Payload, "300.00")
}

func TestPaymentCode_PixNotConfigured(t *testing.T) {
	venues := map[int64]*domain.Venue{
		1: {ID: 1, Name: "Arena Central", PricePerSlot: 150},
	}
	svc := testService(venues, nil, nil)

	_, err := svc.PaymentCode(context.Background(), &models.PaymentCodeRequest{VenueID: 1, SlotCount: 1})
	assert.ErrorIs(t, err, ErrPixNotConfigured)
}

func TestPaymentCode_VenueNotFound(t *testing.T) {
	svc := testService(map[int64]*domain.Venue{}, nil, nil)

	_, err := svc.PaymentCode(context.Background(), &models.PaymentCodeRequest{VenueID: 404, SlotCount: 1})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestPaymentCode_InvalidSlotCount(t *testing.T) {
	venues := map[int64]*domain.Venue{1: {ID: 1, PricePerSlot: 150}}
	svc := testService(venues, nil, nil)

	_, err := svc.PaymentCode(context.Background(), &models.PaymentCodeRequest{VenueID: 1, SlotCount: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PaymentCode(context.Background(), &models.PaymentCodeRequest{
		VenueID:   1,
		SlotCount: domain.MaxSelectionSize + 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

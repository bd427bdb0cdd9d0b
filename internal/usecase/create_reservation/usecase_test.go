package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supasport/booking-service/internal/domain"
	slotRepo "github.com/supasport/booking-service/internal/infra/storage/slot"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
	"github.com/supasport/booking-service/pkg/ptr"
	"github.com/supasport/booking-service/pkg/types"
)

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeSlotRepo struct {
	nextID     int64
	created    []types.TimeString
	reserved   []int64
	reserveErr map[int64]error
}

func (f *fakeSlotRepo) CreateReserved(_ context.Context, _ int64, _ time.Time, startTime types.TimeString) (int64, error) {
	f.nextID++
	f.created = append(f.created, startTime)
	return f.nextID, nil
}

func (f *fakeSlotRepo) Reserve(_ context.Context, id int64) error {
	if err, ok := f.reserveErr[id]; ok {
		return err
	}
	f.reserved = append(f.reserved, id)
	return nil
}

type fakeReservationRepo struct {
	nextID  int64
	slotIDs []int64
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	f.slotIDs = append(f.slotIDs, res.SlotID)
	out := *res
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	return &out, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:           1,
		OwnerID:      10,
		Name:         "Arena Central",
		PricePerSlot: 100,
	}
}

func testRequest(selection []SelectedSlot) *Request {
	return &Request{
		UserID:    7,
		VenueID:   1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Selection: selection,
	}
}

func TestExecute_LazyCreateAndUpdate(t *testing.T) {
	slots := &fakeSlotRepo{nextID: 100}
	reservations := &fakeReservationRepo{}

	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, slots, reservations, noopLogger{})

	// Первый слот ещё не имеет строки в БД, второй имеет
	resp, err := uc.Execute(context.Background(), testRequest([]SelectedSlot{
		{ID: nil, StartTime: "08:00"},
		{ID: ptr.Ptr(int64(55)), StartTime: "09:00"},
	}))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Len(t, resp.ReservationIDs, 2)
	assert.Nil(t, resp.FailedAt)
	assert.Equal(t, 200.0, resp.TotalPrice)

	// Слот без ID создан лениво, слот с ID обновлён
	assert.Equal(t, []types.TimeString{"08:00"}, slots.created)
	assert.Equal(t, []int64{55}, slots.reserved)

	// Бронирования ссылаются на фактические ID слотов
	assert.Equal(t, []int64{101, 55}, reservations.slotIDs)
}

func TestExecute_PartialFailureKeepsCommitted(t *testing.T) {
	slots := &fakeSlotRepo{
		reserveErr: map[int64]error{56: slotRepo.ErrSlotAlreadyReserved},
	}
	reservations := &fakeReservationRepo{}

	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, slots, reservations, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest([]SelectedSlot{
		{ID: ptr.Ptr(int64(55)), StartTime: "08:00"},
		{ID: ptr.Ptr(int64(56)), StartTime: "09:00"},
		{ID: ptr.Ptr(int64(57)), StartTime: "10:00"},
	}))

	// Ошибка возвращается вместе с фактическим результатом
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NotNil(t, resp)

	// Первый слот зафиксирован и остаётся в силе, третий не тронут
	assert.Equal(t, 1, resp.Created)
	assert.Len(t, resp.ReservationIDs, 1)
	assert.Equal(t, 100.0, resp.TotalPrice)
	require.NotNil(t, resp.FailedAt)
	assert.Equal(t, types.TimeString("09:00"), *resp.FailedAt)

	assert.Equal(t, []int64{55}, slots.reserved)
	assert.Equal(t, []int64{55}, reservations.slotIDs)
}

func TestExecute_ReservationInsertFailure(t *testing.T) {
	slots := &fakeSlotRepo{}
	reservations := &fakeReservationRepo{err: errors.New("insert failed")}

	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, slots, reservations, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest([]SelectedSlot{
		{ID: ptr.Ptr(int64(55)), StartTime: "08:00"},
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	require.NotNil(t, resp)
	assert.Equal(t, 0, resp.Created)
	require.NotNil(t, resp.FailedAt)
	assert.Equal(t, types.TimeString("08:00"), *resp.FailedAt)

	// Слот остался зарезервированным: отката нет
	assert.Equal(t, []int64{55}, slots.reserved)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeVenueRepo{err: venueRepo.ErrVenueNotFound},
		&fakeSlotRepo{},
		&fakeReservationRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest([]SelectedSlot{
		{StartTime: "08:00"},
	}))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, &fakeSlotRepo{}, &fakeReservationRepo{}, noopLogger{})

	t.Run("empty selection", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), testRequest(nil))
		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("duplicate slot", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), testRequest([]SelectedSlot{
			{StartTime: "08:00"},
			{StartTime: "08:00"},
		}))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), testRequest([]SelectedSlot{
			{StartTime: "8am"},
		}))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("selection too large", func(t *testing.T) {
		selection := make([]SelectedSlot, domain.MaxSelectionSize+1)
		for i := range selection {
			ts, err := types.NewTimeStringFromMinutes(i * 5)
			require.NoError(t, err)
			selection[i] = SelectedSlot{StartTime: ts}
		}
		_, err := uc.Execute(context.Background(), testRequest(selection))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-positive user", func(t *testing.T) {
		req := testRequest([]SelectedSlot{{StartTime: "08:00"}})
		req.UserID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

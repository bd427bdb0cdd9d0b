package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supasport/booking-service/internal/domain"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
	"github.com/supasport/booking-service/internal/service/venues/models"
)

type fakeVenueRepo struct {
	venues  map[int64]*domain.Venue
	deleted []int64
}

func newFakeVenueRepo(venues ...*domain.Venue) *fakeVenueRepo {
	m := make(map[int64]*domain.Venue, len(venues))
	for _, v := range venues {
		m[v.ID] = v
	}
	return &fakeVenueRepo{venues: m}
}

func (f *fakeVenueRepo) Create(_ context.Context, v *domain.Venue) (*domain.Venue, error) {
	out := *v
	out.ID = int64(len(f.venues) + 1)
	f.venues[out.ID] = &out
	return &out, nil
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVenueRepo) List(_ context.Context, _ domain.VenueFilter) ([]*domain.Venue, error) {
	out := make([]*domain.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		copied := *v
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, id int64, v *domain.Venue) error {
	if _, ok := f.venues[id]; !ok {
		return venueRepo.ErrVenueNotFound
	}
	updated := *v
	updated.ID = id
	f.venues[id] = &updated
	return nil
}

func (f *fakeVenueRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.venues[id]; !ok {
		return venueRepo.ErrVenueNotFound
	}
	delete(f.venues, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeReservationRepo struct {
	exists bool
}

func (f *fakeReservationRepo) ExistsByVenueID(_ context.Context, _ int64) (bool, error) {
	return f.exists, nil
}

type fakeFileStore struct {
	uploads map[string][]byte
	deleted []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{uploads: make(map[string][]byte)}
}

func (f *fakeFileStore) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	f.uploads[key] = data
	return f.PublicURL(key), nil
}

func (f *fakeFileStore) PublicURL(key string) string {
	return "https://files.example.com/object/public/imagens-estabelecimentos/" + key
}

func (f *fakeFileStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:                  1,
		OwnerID:             10,
		Name:                "Arena Central",
		SportType:           "society",
		City:                "Recife",
		OpeningTime:         "08:00",
		ClosingTime:         "22:00",
		SlotDurationMinutes: 60,
		PricePerSlot:        150,
		OperatingDays:       []domain.Weekday{"seg", "ter"},
	}
}

func testCreateRequest() *models.CreateVenueRequest {
	return &models.CreateVenueRequest{
		OwnerID:             10,
		Name:                "Arena Central",
		SportType:           "society",
		City:                "Recife",
		OpeningTime:         "08:00",
		ClosingTime:         "22:00",
		SlotDurationMinutes: 60,
		PricePerSlot:        150,
		OperatingDays:       []string{"seg", "ter"},
	}
}

func newTestService(repo *fakeVenueRepo, reservations *fakeReservationRepo, files *fakeFileStore) *Service {
	return NewService(repo, reservations, files, noopLogger{})
}

func TestGetByID_AttachesImageURLs(t *testing.T) {
	svc := newTestService(newFakeVenueRepo(testVenue()), &fakeReservationRepo{}, newFakeFileStore())

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, resp.DayImageURL)
	require.NotNil(t, resp.NightImageURL)
	assert.Contains(t, *resp.DayImageURL, "estabelecimentos/1_dia.jpg")
	assert.Contains(t, *resp.NightImageURL, "estabelecimentos/1_noite.jpg")
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeVenueRepo(), &fakeReservationRepo{}, newFakeFileStore())

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(newFakeVenueRepo(), &fakeReservationRepo{}, newFakeFileStore())

	t.Run("missing name", func(t *testing.T) {
		req := testCreateRequest()
		req.Name = ""
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		req := testCreateRequest()
		req.PricePerSlot = -1
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown weekday", func(t *testing.T) {
		req := testCreateRequest()
		req.OperatingDays = []string{"monday"}
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad opening time", func(t *testing.T) {
		req := testCreateRequest()
		req.OpeningTime = "8am"
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duration out of range", func(t *testing.T) {
		req := testCreateRequest()
		req.SlotDurationMinutes = 1000
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreate_Success(t *testing.T) {
	svc := newTestService(newFakeVenueRepo(), &fakeReservationRepo{}, newFakeFileStore())

	resp, err := svc.Create(context.Background(), testCreateRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Arena Central", resp.Name)
	assert.Equal(t, []string{"seg", "ter"}, resp.OperatingDays)
}

func TestUpdate_AccessDenied(t *testing.T) {
	svc := newTestService(newFakeVenueRepo(testVenue()), &fakeReservationRepo{}, newFakeFileStore())

	req := &models.UpdateVenueRequest{UserID: 99, CreateVenueRequest: *testCreateRequest()}
	req.OwnerID = 99

	_, err := svc.Update(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_Success(t *testing.T) {
	repo := newFakeVenueRepo(testVenue())
	svc := newTestService(repo, &fakeReservationRepo{}, newFakeFileStore())

	req := &models.UpdateVenueRequest{UserID: 10, CreateVenueRequest: *testCreateRequest()}
	req.Name = "Arena Renovada"

	resp, err := svc.Update(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Arena Renovada", resp.Name)
	assert.Equal(t, "Arena Renovada", repo.venues[1].Name)
}

func TestDelete_GuardedByReservations(t *testing.T) {
	repo := newFakeVenueRepo(testVenue())
	svc := newTestService(repo, &fakeReservationRepo{exists: true}, newFakeFileStore())

	err := svc.Delete(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrHasReservations)
	assert.Empty(t, repo.deleted)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeVenueRepo(testVenue())
	files := newFakeFileStore()
	svc := newTestService(repo, &fakeReservationRepo{}, files)

	err := svc.Delete(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)

	// Изображения подчищаются по соглашению об именовании
	assert.Contains(t, files.deleted, "estabelecimentos/1_dia.jpg")
	assert.Contains(t, files.deleted, "estabelecimentos/1_noite.jpg")
}

func TestDelete_AccessDenied(t *testing.T) {
	svc := newTestService(newFakeVenueRepo(testVenue()), &fakeReservationRepo{}, newFakeFileStore())

	err := svc.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUploadImage(t *testing.T) {
	files := newFakeFileStore()
	svc := newTestService(newFakeVenueRepo(testVenue()), &fakeReservationRepo{}, files)

	t.Run("invalid kind", func(t *testing.T) {
		_, err := svc.UploadImage(context.Background(), 1, 10, "tarde", []byte{1})
		assert.ErrorIs(t, err, ErrInvalidImageKind)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := svc.UploadImage(context.Background(), 1, 10, ImageKindDay, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not owner", func(t *testing.T) {
		_, err := svc.UploadImage(context.Background(), 1, 99, ImageKindDay, []byte{1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("success", func(t *testing.T) {
		resp, err := svc.UploadImage(context.Background(), 1, 10, ImageKindNight, []byte{1, 2, 3})
		require.NoError(t, err)
		assert.Contains(t, resp.URL, "estabelecimentos/1_noite.jpg")
		assert.Equal(t, []byte{1, 2, 3}, files.uploads["estabelecimentos/1_noite.jpg"])
	})
}

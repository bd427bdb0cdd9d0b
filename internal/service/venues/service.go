package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/supasport/booking-service/internal/domain"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
	"github.com/supasport/booking-service/internal/service/venues/models"
)

// Виды изображений площадки в файловом хранилище
const (
	ImageKindDay   = "dia"
	ImageKindNight = "noite"
)

// Service сервис каталога площадок
type Service struct {
	venueRepo       VenueRepository
	reservationRepo ReservationRepository
	fileStore       FileStoreClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	venueRepo VenueRepository,
	reservationRepo ReservationRepository,
	fileStore FileStoreClient,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:       venueRepo,
		reservationRepo: reservationRepo,
		fileStore:       fileStore,
		logger:          logger,
	}
}

// List ищет площадки по подстроке имени
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	s.logger.Info("List: query=%q, limit=%d", req.NameQuery, req.Limit)

	venues, err := s.venueRepo.List(ctx, domain.VenueFilter{
		NameQuery: req.NameQuery,
		City:      req.City,
		Limit:     req.Limit,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	for _, v := range venues {
		s.attachImageURLs(v)
	}

	s.logger.Info("List: found %d venues for query=%q", len(venues), req.NameQuery)
	return models.FromDomainVenueList(venues), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.attachImageURLs(venue)

	return models.FromDomainVenue(venue), nil
}

// Create регистрирует новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: registering venue %q for owner=%d", req.Name, req.OwnerID)

	venue, err := s.validateAndConvert(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		s.logger.Error("Create: repository error for venue %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: venue id=%d registered", created.ID)
	return models.FromDomainVenue(created), nil
}

// Update обновляет площадку. Доступно только её владельцу.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Update: updating venue id=%d by user=%d", id, req.UserID)

	existing, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Update: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !existing.IsOwnedBy(req.UserID) {
		s.logger.Warn("Update: user=%d is not the owner of venue id=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	venue, err := s.validateAndConvert(&req.CreateVenueRequest)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.venueRepo.Update(ctx, id, venue); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет площадку. Доступно только её владельцу; площадка с
// бронированиями удалена быть не может.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting venue id=%d by user=%d", id, userID)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Delete: venue id=%d not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !venue.IsOwnedBy(userID) {
		s.logger.Warn("Delete: user=%d is not the owner of venue id=%d", userID, id)
		return ErrAccessDenied
	}

	hasReservations, err := s.reservationRepo.ExistsByVenueID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check reservations for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to check reservations: %v", ErrInternal, err)
	}
	if hasReservations {
		s.logger.Warn("Delete: venue id=%d has reservations, refusing to delete", id)
		return ErrHasReservations
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Изображения чистим по соглашению об именовании ключей; отсутствие
	// объекта не считается ошибкой
	for _, kind := range []string{ImageKindDay, ImageKindNight} {
		if err := s.fileStore.Delete(ctx, imageKey(id, kind)); err != nil {
			s.logger.Warn("Delete: failed to delete %s image for venue id=%d: %v", kind, id, err)
		}
	}

	s.logger.Info("Delete: venue id=%d deleted", id)
	return nil
}

// UploadImage загружает изображение площадки (дневное или ночное).
// Доступно только владельцу.
func (s *Service) UploadImage(ctx context.Context, id int64, userID int64, kind string, data []byte) (*models.UploadImageResponse, error) {
	s.logger.Info("UploadImage: venue id=%d, kind=%s, user=%d, size=%d", id, kind, userID, len(data))

	if kind != ImageKindDay && kind != ImageKindNight {
		s.logger.Warn("UploadImage: invalid image kind %q", kind)
		return nil, ErrInvalidImageKind
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: image data is empty", ErrInvalidInput)
	}

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("UploadImage: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	if !venue.IsOwnedBy(userID) {
		s.logger.Warn("UploadImage: user=%d is not the owner of venue id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	url, err := s.fileStore.Upload(ctx, imageKey(id, kind), "image/jpeg", data)
	if err != nil {
		s.logger.Error("UploadImage: upload failed for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - upload failed: %v", ErrInternal, err)
	}

	return &models.UploadImageResponse{URL: url}, nil
}

// validateAndConvert валидирует запрос и конвертирует его в доменную модель
func (s *Service) validateAndConvert(req *models.CreateVenueRequest) (*domain.Venue, error) {
	if req.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if req.Name == "" || len(req.Name) > domain.MaxVenueNameLength {
		return nil, fmt.Errorf("%w: name is required and must not exceed %d characters", ErrInvalidInput, domain.MaxVenueNameLength)
	}
	if req.PricePerSlot < 0 {
		return nil, fmt.Errorf("%w: pricePerSlot must not be negative", ErrInvalidInput)
	}
	if req.SlotDurationMinutes != 0 &&
		(req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes) {
		return nil, fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	for _, d := range req.OperatingDays {
		if domain.Weekday(d).Index() < 0 {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, d)
		}
	}

	venue, err := req.ToDomainVenue()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return venue, nil
}

// attachImageURLs проставляет публичные ссылки на изображения по
// соглашению об именовании ключей
func (s *Service) attachImageURLs(v *domain.Venue) {
	day := s.fileStore.PublicURL(imageKey(v.ID, ImageKindDay))
	night := s.fileStore.PublicURL(imageKey(v.ID, ImageKindNight))
	v.DayImageURL = &day
	v.NightImageURL = &night
}

// imageKey строит ключ объекта изображения площадки в хранилище
func imageKey(venueID int64, kind string) string {
	return fmt.Sprintf("estabelecimentos/%d_%s.jpg", venueID, kind)
}

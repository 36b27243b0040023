package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"cafe-api/cafe-svc/internal/domain"
)

type CafeService struct {
	repository CafeRepository
	cache      CafeCache
	publisher  EventPublisher
	qrEncoder  QRGenerator
	apiKey     string
	pick       func(n int) int
}

// NewCafeService wires the storage accessor with its optional collaborators;
// cache, publisher and qr may be nil.
func NewCafeService(repository CafeRepository, cache CafeCache, publisher EventPublisher, qr QRGenerator, apiKey string) *CafeService {
	return &CafeService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		qrEncoder:  qr,
		apiKey:     apiKey,
		pick:       rand.IntN,
	}
}

// WithPicker replaces the uniform index source used by Random.
func (s *CafeService) WithPicker(pick func(n int) int) *CafeService {
	s.pick = pick
	return s
}

// List is read-through. The generation is taken before the table is read so a
// write that lands in between keeps the older snapshot out of the cache.
func (s *CafeService) List(ctx context.Context) ([]domain.Cafe, error) {
	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		cafes, ok, err := s.cache.GetCafes(ctx)
		if err != nil {
			log.Printf("[cafe-svc] warning: cache read failed: %v", err)
		}
		if ok {
			return cafes, nil
		}

		generation, err = s.cache.Generation(ctx)
		if err != nil {
			log.Printf("[cafe-svc] warning: cache generation read failed: %v", err)
		}
		cacheable = err == nil
	}

	cafes, err := s.repository.ListCafes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cafes: %w", err)
	}

	if cacheable {
		if err := s.cache.SetCafes(ctx, generation, cafes); err != nil {
			log.Printf("[cafe-svc] warning: cache write failed: %v", err)
		}
	}
	return cafes, nil
}

func (s *CafeService) Random(ctx context.Context) (*domain.Cafe, error) {
	cafes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, domain.ErrNoCafes
	}
	cafe := cafes[s.pick(len(cafes))]
	return &cafe, nil
}

// Search matches the whole location label, ignoring case.
func (s *CafeService) Search(ctx context.Context, location string) ([]domain.Cafe, error) {
	cafes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := []domain.Cafe{}
	if location == "" {
		return matches, nil
	}
	for _, cafe := range cafes {
		if strings.EqualFold(cafe.Location, location) {
			matches = append(matches, cafe)
		}
	}
	return matches, nil
}

func (s *CafeService) Create(ctx context.Context, cafe *domain.Cafe) error {
	if err := validateCafe(cafe); err != nil {
		return err
	}
	if err := s.repository.CreateCafe(ctx, cafe); err != nil {
		return err
	}

	s.afterWrite(ctx, domain.CafeEvent{
		Type:        domain.EventCafeAdded,
		CafeID:      cafe.ID,
		Name:        cafe.Name,
		Location:    cafe.Location,
		CoffeePrice: cafe.CoffeePrice,
	})
	return nil
}

func (s *CafeService) UpdatePrice(ctx context.Context, id int, price string) error {
	cafe, err := s.repository.GetCafe(ctx, id)
	if err != nil {
		return err
	}
	if price == "" {
		return domain.ErrMissingPrice
	}

	rows, err := s.repository.UpdateCoffeePrice(ctx, id, price)
	if err != nil {
		return fmt.Errorf("failed to update price: %w", err)
	}
	if rows == 0 {
		return domain.ErrCafeNotFound
	}

	s.afterWrite(ctx, domain.CafeEvent{
		Type:        domain.EventPriceUpdated,
		CafeID:      cafe.ID,
		Name:        cafe.Name,
		Location:    cafe.Location,
		CoffeePrice: &price,
	})
	return nil
}

// ReportClosed checks the key before looking the cafe up.
func (s *CafeService) ReportClosed(ctx context.Context, id int, apiKey string) error {
	if !s.authorized(apiKey) {
		return domain.ErrUnauthorized
	}

	cafe, err := s.repository.GetCafe(ctx, id)
	if err != nil {
		return err
	}

	rows, err := s.repository.DeleteCafe(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete cafe: %w", err)
	}
	if rows == 0 {
		return domain.ErrCafeNotFound
	}

	s.afterWrite(ctx, domain.CafeEvent{
		Type:     domain.EventCafeClosed,
		CafeID:   cafe.ID,
		Name:     cafe.Name,
		Location: cafe.Location,
	})
	return nil
}

func (s *CafeService) QRCode(ctx context.Context, id int) ([]byte, error) {
	cafe, err := s.repository.GetCafe(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("qr encoder not configured")
	}
	return s.qrEncoder.Generate(cafe.MapURL)
}

func (s *CafeService) LocationStats(ctx context.Context) ([]domain.LocationCount, error) {
	if s.cache == nil {
		return []domain.LocationCount{}, nil
	}
	return s.cache.LocationCounts(ctx)
}

func (s *CafeService) authorized(apiKey string) bool {
	if s.apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) == 1
}

func (s *CafeService) afterWrite(ctx context.Context, event domain.CafeEvent) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("[cafe-svc] warning: cache invalidation failed: %v", err)
		}
	}

	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.PublishCafeEvent(ctx, event); err != nil {
		log.Printf("[cafe-svc] warning: failed to publish %s for cafe %d: %v", event.Type, event.CafeID, err)
	}
}

func validateCafe(cafe *domain.Cafe) error {
	required := []struct {
		field string
		value string
	}{
		{"name", cafe.Name},
		{"map_url", cafe.MapURL},
		{"img_url", cafe.ImgURL},
		{"location", cafe.Location},
		{"seats", cafe.Seats},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &domain.ValidationError{Field: r.field, Reason: "missing field"}
		}
	}
	return nil
}

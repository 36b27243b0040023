package service

import (
	"context"

	"cafe-api/cafe-svc/internal/domain"
)

type CafeRepository interface {
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	GetCafe(ctx context.Context, id int) (*domain.Cafe, error)
	CreateCafe(ctx context.Context, cafe *domain.Cafe) error
	UpdateCoffeePrice(ctx context.Context, id int, price string) (int64, error)
	DeleteCafe(ctx context.Context, id int) (int64, error)
}

type CafeCache interface {
	GetCafes(ctx context.Context) ([]domain.Cafe, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetCafes(ctx context.Context, generation int64, cafes []domain.Cafe) error
	Invalidate(ctx context.Context) error
	LocationCounts(ctx context.Context) ([]domain.LocationCount, error)
}

type EventPublisher interface {
	PublishCafeEvent(ctx context.Context, event domain.CafeEvent) error
}

type CafeServiceInterface interface {
	List(ctx context.Context) ([]domain.Cafe, error)
	Random(ctx context.Context) (*domain.Cafe, error)
	Search(ctx context.Context, location string) ([]domain.Cafe, error)
	Create(ctx context.Context, cafe *domain.Cafe) error
	UpdatePrice(ctx context.Context, id int, price string) error
	ReportClosed(ctx context.Context, id int, apiKey string) error
	QRCode(ctx context.Context, id int) ([]byte, error)
	LocationStats(ctx context.Context) ([]domain.LocationCount, error)
}

var _ CafeServiceInterface = (*CafeService)(nil)

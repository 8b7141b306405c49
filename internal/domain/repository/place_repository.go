package repository

import (
	"context"

	"github.com/geonav-service/internal/domain"
)

// PlaceRepository определяет методы для работы со справочником мест
type PlaceRepository interface {
	// SearchNearby возвращает POI вокруг точки, отфильтрованные по категории
	// и ключевым словам, с уже вычисленным расстоянием до точки
	SearchNearby(ctx context.Context, center domain.Coordinate, category string, radius int, keywords string, limit int) ([]domain.POI, error)

	// SearchTransitStops возвращает станции метро вокруг точки
	SearchTransitStops(ctx context.Context, center domain.Coordinate, radius int) ([]domain.TransitStop, error)
}

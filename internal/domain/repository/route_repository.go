package repository

import (
	"context"

	"github.com/geonav-service/internal/domain"
)

// RouteRepository определяет методы построения маршрутов
type RouteRepository interface {
	// GetRoute строит маршрут между двумя точками.
	// Возвращает (nil, nil) если маршрут не найден.
	GetRoute(ctx context.Context, origin, destination domain.Coordinate, mode string) (*domain.Route, error)
}

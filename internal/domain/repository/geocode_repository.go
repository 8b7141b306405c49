package repository

import (
	"context"

	"github.com/geonav-service/internal/domain"
)

// GeocodeRepository определяет методы геокодирования
type GeocodeRepository interface {
	// Geocode преобразует название места в координату.
	// Возвращает (nil, nil) если место не найдено.
	Geocode(ctx context.Context, address, city string) (*domain.Coordinate, error)
}

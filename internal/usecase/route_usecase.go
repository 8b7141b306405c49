package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/domain/repository"
	"github.com/geonav-service/internal/pkg/errors"
	"github.com/geonav-service/internal/usecase/dto"
)

// RouteUseCase - use case построения маршрутов
type RouteUseCase struct {
	routeRepo repository.RouteRepository
	logger    *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(routeRepo repository.RouteRepository, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// PlanRoute строит маршрут между двумя точками. Отсутствие маршрута
// отличается от сбоя провайдера: первое - ErrRouteNotFound, второе -
// внутренняя ошибка на границе сервиса.
func (uc *RouteUseCase) PlanRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = domain.TravelModeWalking
	}

	origin := domain.Coordinate{Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	destination := domain.Coordinate{Lat: req.Destination.Lat, Lng: req.Destination.Lng}

	route, err := uc.routeRepo.GetRoute(ctx, origin, destination, mode)
	if err != nil {
		uc.logger.Error("Route planning failed", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if route == nil {
		return nil, errors.ErrRouteNotFound
	}

	return &dto.RouteResponse{Route: route}, nil
}

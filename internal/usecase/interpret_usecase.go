package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/domain/repository"
)

// QueryStrategy - одна стратегия разбора свободного текста в
// структурированный запрос
type QueryStrategy interface {
	Name() string
	Interpret(ctx context.Context, message string, location domain.Coordinate) (*domain.StructuredQuery, error)
}

// InterpretUseCase - use case разбора запроса через цепочку стратегий.
// Стратегии пробуются в порядке приоритета; замыкающая стратегия по
// правилам не ошибается никогда, поэтому Interpret всегда возвращает
// заполненный запрос.
type InterpretUseCase struct {
	strategies  []QueryStrategy
	geocodeRepo repository.GeocodeRepository
	logger      *zap.Logger
}

// NewInterpretUseCase - создание нового InterpretUseCase.
// Стратегия по правилам добавляется в конец цепочки автоматически.
func NewInterpretUseCase(
	strategies []QueryStrategy,
	geocodeRepo repository.GeocodeRepository,
	logger *zap.Logger,
) *InterpretUseCase {
	return &InterpretUseCase{
		strategies:  append(append([]QueryStrategy{}, strategies...), NewRuleStrategy()),
		geocodeRepo: geocodeRepo,
		logger:      logger,
	}
}

// Interpret превращает сообщение пользователя в структурированный запрос
func (uc *InterpretUseCase) Interpret(ctx context.Context, message string, location domain.Coordinate) *domain.StructuredQuery {
	var query *domain.StructuredQuery

	for _, strategy := range uc.strategies {
		result, err := strategy.Interpret(ctx, message, location)
		if err != nil {
			uc.logger.Warn("Query strategy failed, falling through",
				zap.String("strategy", strategy.Name()),
				zap.Error(err))
			continue
		}

		uc.logger.Debug("Query interpreted",
			zap.String("strategy", strategy.Name()),
			zap.String("category", result.Category))
		query = result
		break
	}

	uc.resolveLocationLabel(ctx, query)
	return query
}

// resolveLocationLabel геокодирует явно упомянутое место. Неудача
// геокодирования не ошибка: остаётся только текстовая метка, и вызывающий
// использует исходную координату пользователя.
func (uc *InterpretUseCase) resolveLocationLabel(ctx context.Context, query *domain.StructuredQuery) {
	if query == nil || query.LocationLabel == "" {
		return
	}

	coord, err := uc.geocodeRepo.Geocode(ctx, query.LocationLabel, "")
	if err != nil {
		uc.logger.Warn("Failed to geocode location label",
			zap.String("label", query.LocationLabel),
			zap.Error(err))
		return
	}
	if coord == nil {
		uc.logger.Debug("Location label not resolved",
			zap.String("label", query.LocationLabel))
		return
	}

	query.LocationOverride = coord
}

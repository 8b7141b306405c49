package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/domain/repository"
	"github.com/geonav-service/internal/pkg/errors"
	"github.com/geonav-service/internal/usecase/dto"
)

// SearchUseCase - use case поиска и ранжирования мест
type SearchUseCase struct {
	placeRepo repository.PlaceRepository
	ranking   *RankingUseCase
	logger    *zap.Logger
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	placeRepo repository.PlaceRepository,
	ranking *RankingUseCase,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		placeRepo: placeRepo,
		ranking:   ranking,
		logger:    logger,
	}
}

// Search выполняет полный конвейер: поиск кандидатов, обогащение,
// ранжирование. Сбои провайдера трактуются как пустой результат;
// единственная видимая наружу ошибка - "ничего не найдено".
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	query := domain.StructuredQuery{
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Radius:      req.Radius,
		Limit:       req.Limit,
		SortBy:      domain.NormalizeSortMode(req.SortBy),
		Brands:      req.Brands,
		Proximity:   req.Proximity,
	}
	query.Normalize()

	center := domain.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	if req.LocationOverride != nil {
		center = domain.Coordinate{Lat: req.LocationOverride.Lat, Lng: req.LocationOverride.Lng}
	}

	// Сетевые ключевые слова: бренды приоритетнее подкатегории
	keywords := query.Subcategory
	if len(query.Brands) > 0 {
		keywords = strings.Join(query.Brands, "|")
	}

	pois, err := uc.placeRepo.SearchNearby(ctx, center, query.Category, query.Radius, keywords, query.Limit*2)
	if err != nil {
		// Сбой справочника не поднимается выше: для пользователя это
		// "ничего не найдено"
		uc.logger.Error("Place search failed", zap.Error(err))
		pois = nil
	}

	if len(pois) == 0 {
		return nil, errors.ErrNoResults
	}

	ranked := uc.ranking.Rank(ctx, pois, center, query.SortBy, query.Proximity, query.Brands, query.Limit)
	if len(ranked) == 0 {
		return nil, errors.ErrNoResults
	}

	return &dto.SearchResponse{
		Total:   len(ranked),
		Results: ranked,
	}, nil
}

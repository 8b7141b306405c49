package usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/domain/repository"
	"github.com/geonav-service/internal/pkg/utils"
)

// transitScanRadius - радиус поиска станций метро вокруг пользователя.
// Станции ищутся вокруг пользователя, а не вокруг каждого кандидата.
const transitScanRadius = 10000

// RankingUseCase - фильтрация, обогащение и сортировка кандидатов
type RankingUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

// NewRankingUseCase - создание нового RankingUseCase
func NewRankingUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *RankingUseCase {
	return &RankingUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// Rank фильтрует кандидатов по брендам, при необходимости обогащает их
// ближайшими станциями метро, сортирует по выбранному критерию и
// обрезает до limit. Никогда не завершается ошибкой.
func (uc *RankingUseCase) Rank(
	ctx context.Context,
	pois []domain.POI,
	userLocation domain.Coordinate,
	sortBy domain.SortMode,
	proximity string,
	brands []string,
	limit int,
) []domain.POI {
	pois = filterByBrands(pois, brands)

	needsTransit := proximity == domain.CategorySubway ||
		sortBy == domain.SortByTransit ||
		sortBy == domain.SortByComposite
	if needsTransit && len(pois) > 0 {
		uc.enrichWithTransit(ctx, pois, userLocation)
	}

	switch sortBy {
	case domain.SortByTransit:
		// Кандидаты без данных о метро уходят в конец
		sort.SliceStable(pois, func(i, j int) bool {
			return transitDistance(pois[i]) < transitDistance(pois[j])
		})
	case domain.SortByComposite:
		sort.SliceStable(pois, func(i, j int) bool {
			return CompositeScore(pois[i]) > CompositeScore(pois[j])
		})
	case domain.SortByRating:
		// Рейтинга в справочнике нет, режим работает как сортировка
		// по расстоянию
		sort.SliceStable(pois, func(i, j int) bool {
			return pois[i].Distance < pois[j].Distance
		})
	default:
		sort.SliceStable(pois, func(i, j int) bool {
			return pois[i].Distance < pois[j].Distance
		})
	}

	if len(pois) > limit {
		pois = pois[:limit]
	}
	return pois
}

// filterByBrands оставляет кандидатов, в названии которых встречается
// хотя бы один из запрошенных брендов
func filterByBrands(pois []domain.POI, brands []string) []domain.POI {
	if len(brands) == 0 {
		return pois
	}

	filtered := make([]domain.POI, 0, len(pois))
	for _, poi := range pois {
		for _, brand := range brands {
			if strings.Contains(poi.Name, brand) {
				filtered = append(filtered, poi)
				break
			}
		}
	}
	return filtered
}

// enrichWithTransit прикрепляет к каждому кандидату ближайшую станцию
// метро. Ошибка поиска станций или их отсутствие не ошибка: кандидаты
// остаются без данных о метро.
func (uc *RankingUseCase) enrichWithTransit(ctx context.Context, pois []domain.POI, userLocation domain.Coordinate) {
	stops, err := uc.placeRepo.SearchTransitStops(ctx, userLocation, transitScanRadius)
	if err != nil {
		uc.logger.Warn("Failed to fetch transit stops", zap.Error(err))
		return
	}
	if len(stops) == 0 {
		uc.logger.Debug("No transit stops around user")
		return
	}

	for i := range pois {
		pois[i].NearestTransit = nearestStop(pois[i], stops)
	}
}

// nearestStop находит ближайшую к кандидату станцию полным перебором;
// при равных расстояниях побеждает первая в списке
func nearestStop(poi domain.POI, stops []domain.TransitStop) *domain.TransitProximity {
	minDistance := math.Inf(1)
	var nearest *domain.TransitProximity

	for _, stop := range stops {
		d := utils.HaversineDistance(
			poi.Location.Lat, poi.Location.Lng,
			stop.Location.Lat, stop.Location.Lng,
		)
		if d < minDistance {
			minDistance = d
			nearest = &domain.TransitProximity{
				Name:     stop.Name,
				Distance: math.Round(d),
			}
		}
	}

	return nearest
}

// transitDistance возвращает расстояние до метро для сортировки;
// отсутствие данных трактуется как бесконечность
func transitDistance(poi domain.POI) float64 {
	if poi.NearestTransit == nil {
		return math.Inf(1)
	}
	return poi.NearestTransit.Distance
}

// CompositeScore - взвешенная оценка кандидата: 60% близость к
// пользователю, 40% близость к метро, обе компоненты не ниже нуля
func CompositeScore(poi domain.POI) float64 {
	score := math.Max(0, 100-poi.Distance/100) * 0.6

	if poi.NearestTransit != nil {
		score += math.Max(0, 100-poi.NearestTransit.Distance/10) * 0.4
	}

	return score
}

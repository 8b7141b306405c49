package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/usecase"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) SearchNearby(ctx context.Context, center domain.Coordinate, category string, radius int, keywords string, limit int) ([]domain.POI, error) {
	args := m.Called(ctx, center, category, radius, keywords, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.POI), args.Error(1)
}

func (m *MockPlaceRepository) SearchTransitStops(ctx context.Context, center domain.Coordinate, radius int) ([]domain.TransitStop, error) {
	args := m.Called(ctx, center, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransitStop), args.Error(1)
}

func testPOI(id string, distance float64, lat, lng float64) domain.POI {
	return domain.POI{
		ID:       id,
		Name:     "店" + id,
		Location: domain.Coordinate{Lat: lat, Lng: lng},
		Distance: distance,
	}
}

func TestRankingUseCase_Rank(t *testing.T) {
	logger := zap.NewNop()

	t.Run("default sort by user distance", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := []domain.POI{
			testPOI("a", 900, 39.91, 116.41),
			testPOI("b", 100, 39.90, 116.40),
			testPOI("c", 500, 39.905, 116.405),
		}

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByDistance, "", nil, 10)

		require.Len(t, ranked, 3)
		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i-1].Distance, ranked[i].Distance)
		}
		placeRepo.AssertNotCalled(t, "SearchTransitStops", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rating mode aliases distance sort", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := []domain.POI{
			testPOI("a", 900, 39.91, 116.41),
			testPOI("b", 100, 39.90, 116.40),
		}

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByRating, "", nil, 10)

		require.Len(t, ranked, 2)
		assert.Equal(t, "b", ranked[0].ID)
	})

	t.Run("brand filter keeps only matching names", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := []domain.POI{
			{ID: "a", Name: "星巴克(国贸店)", Distance: 500},
			{ID: "b", Name: "瑞幸咖啡", Distance: 100},
			{ID: "c", Name: "星巴克(王府井店)", Distance: 900},
		}

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByDistance, "", []string{"星巴克"}, 10)

		require.Len(t, ranked, 2)
		for _, poi := range ranked {
			assert.Contains(t, poi.Name, "星巴克")
		}
	})

	t.Run("transit sort enriches and orders by stop distance", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		// Кандидат "far" дальше от пользователя, но ближе к станции
		pois := []domain.POI{
			testPOI("near", 200, 39.9042, 116.4074),
			testPOI("far", 3000, 39.9300, 116.4074),
		}

		stops := []domain.TransitStop{
			{Name: "国贸站", Location: domain.Coordinate{Lat: 39.9310, Lng: 116.4074}},
		}
		placeRepo.On("SearchTransitStops", mock.Anything, userLocation, 10000).Return(stops, nil)

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByTransit, domain.CategorySubway, nil, 10)

		require.Len(t, ranked, 2)
		assert.Equal(t, "far", ranked[0].ID)
		require.NotNil(t, ranked[0].NearestTransit)
		assert.Equal(t, "国贸站", ranked[0].NearestTransit.Name)
		for i := 1; i < len(ranked); i++ {
			require.NotNil(t, ranked[i].NearestTransit)
			assert.LessOrEqual(t, ranked[i-1].NearestTransit.Distance, ranked[i].NearestTransit.Distance)
		}
		placeRepo.AssertExpectations(t)
	})

	t.Run("candidates without transit data sort last", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := []domain.POI{
			{ID: "a", Name: "甲", Distance: 100, NearestTransit: nil},
			{ID: "b", Name: "乙", Distance: 900, NearestTransit: &domain.TransitProximity{Name: "站", Distance: 300}},
		}

		// Станции не найдены: у кандидата "a" данных о метро так и не появится
		placeRepo.On("SearchTransitStops", mock.Anything, userLocation, 10000).Return(nil, nil)

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByTransit, "", nil, 10)

		require.Len(t, ranked, 2)
		assert.Equal(t, "b", ranked[0].ID)
		assert.Equal(t, "a", ranked[1].ID)
	})

	t.Run("nearest stop tie goes to first in list", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := []domain.POI{testPOI("a", 100, 39.9042, 116.4074)}

		// Две станции на одинаковом расстоянии
		stops := []domain.TransitStop{
			{Name: "первая", Location: domain.Coordinate{Lat: 39.9142, Lng: 116.4074}},
			{Name: "вторая", Location: domain.Coordinate{Lat: 39.8942, Lng: 116.4074}},
		}
		placeRepo.On("SearchTransitStops", mock.Anything, userLocation, 10000).Return(stops, nil)

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByTransit, "", nil, 10)

		require.Len(t, ranked, 1)
		require.NotNil(t, ranked[0].NearestTransit)
		assert.Equal(t, "первая", ranked[0].NearestTransit.Name)
	})

	t.Run("enrichment failure leaves candidates unenriched", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := []domain.POI{testPOI("a", 100, 39.9042, 116.4074)}
		placeRepo.On("SearchTransitStops", mock.Anything, userLocation, 10000).Return(nil, assert.AnError)

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByTransit, "", nil, 10)

		require.Len(t, ranked, 1)
		assert.Nil(t, ranked[0].NearestTransit)
	})

	t.Run("empty input skips enrichment", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		ranked := uc.Rank(context.Background(), nil, userLocation, domain.SortByTransit, domain.CategorySubway, nil, 10)

		assert.Empty(t, ranked)
		placeRepo.AssertNotCalled(t, "SearchTransitStops", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		pois := make([]domain.POI, 0, 10)
		for i := 0; i < 10; i++ {
			pois = append(pois, testPOI(string(rune('a'+i)), float64(100*(10-i)), 39.9, 116.4))
		}

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByDistance, "", nil, 3)

		assert.Len(t, ranked, 3)
	})

	t.Run("composite mode prefers transit-connected candidates", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := usecase.NewRankingUseCase(placeRepo, logger)

		// Кандидаты на одном расстоянии от пользователя, но "north"
		// рядом со станцией
		pois := []domain.POI{
			testPOI("south", 1000, 39.8952, 116.4074),
			testPOI("north", 1000, 39.9132, 116.4074),
		}

		stops := []domain.TransitStop{
			{Name: "北站", Location: domain.Coordinate{Lat: 39.9133, Lng: 116.4074}},
		}
		placeRepo.On("SearchTransitStops", mock.Anything, userLocation, 10000).Return(stops, nil)

		ranked := uc.Rank(context.Background(), pois, userLocation, domain.SortByComposite, "", nil, 10)

		require.Len(t, ranked, 2)
		assert.Equal(t, "north", ranked[0].ID)
	})
}

func TestCompositeScore(t *testing.T) {
	t.Run("distance component clipped at zero", func(t *testing.T) {
		poi := domain.POI{Distance: 50000}
		assert.Equal(t, 0.0, usecase.CompositeScore(poi))
	})

	t.Run("transit component adds weight", func(t *testing.T) {
		near := domain.POI{Distance: 1000, NearestTransit: &domain.TransitProximity{Distance: 100}}
		far := domain.POI{Distance: 1000, NearestTransit: &domain.TransitProximity{Distance: 900}}
		assert.Greater(t, usecase.CompositeScore(near), usecase.CompositeScore(far))
	})
}

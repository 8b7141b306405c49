package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/pkg/errors"
	"github.com/geonav-service/internal/usecase"
	"github.com/geonav-service/internal/usecase/dto"
)

func newSearchUseCase(placeRepo *MockPlaceRepository) *usecase.SearchUseCase {
	logger := zap.NewNop()
	ranking := usecase.NewRankingUseCase(placeRepo, logger)
	return usecase.NewSearchUseCase(placeRepo, ranking, logger)
}

func TestSearchUseCase_Search(t *testing.T) {
	baseRequest := dto.SearchRequest{
		Category: domain.CategoryCoffee,
		Radius:   2000,
		Limit:    5,
		Location: dto.Location{Lat: 39.9042, Lng: 116.4074},
	}

	t.Run("successful pipeline", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		pois := []domain.POI{
			{ID: "a", Name: "星巴克", Distance: 300},
			{ID: "b", Name: "瑞幸", Distance: 100},
		}
		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryCoffee, 2000, "", 10).
			Return(pois, nil)

		result, err := uc.Search(context.Background(), baseRequest)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Total)
		assert.Equal(t, "b", result.Results[0].ID)
		placeRepo.AssertExpectations(t)
	})

	t.Run("brands joined into keywords", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		req := baseRequest
		req.Brands = []string{"如家", "汉庭"}
		req.Category = domain.CategoryHotel

		pois := []domain.POI{{ID: "a", Name: "如家酒店", Distance: 300}}
		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryHotel, 2000, "如家|汉庭", 10).
			Return(pois, nil)

		result, err := uc.Search(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Total)
		placeRepo.AssertExpectations(t)
	})

	t.Run("subcategory used as keywords without brands", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		req := baseRequest
		req.Category = domain.CategoryHotel
		req.Subcategory = domain.SubcategoryBudgetHotel

		pois := []domain.POI{{ID: "a", Name: "如家酒店", Distance: 300}}
		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryHotel, 2000, domain.SubcategoryBudgetHotel, 10).
			Return(pois, nil)

		_, err := uc.Search(context.Background(), req)
		require.NoError(t, err)
		placeRepo.AssertExpectations(t)
	})

	t.Run("location override shifts search center", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		req := baseRequest
		req.LocationOverride = &dto.Location{Lat: 39.8945, Lng: 116.3220}
		override := domain.Coordinate{Lat: 39.8945, Lng: 116.3220}

		pois := []domain.POI{{ID: "a", Name: "星巴克", Distance: 300}}
		placeRepo.On("SearchNearby", mock.Anything, override, domain.CategoryCoffee, 2000, "", 10).
			Return(pois, nil)

		_, err := uc.Search(context.Background(), req)
		require.NoError(t, err)
		placeRepo.AssertExpectations(t)
	})

	t.Run("empty result surfaces no-results error", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryCoffee, 2000, "", 10).
			Return(nil, nil)

		result, err := uc.Search(context.Background(), baseRequest)
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrNoResults, err)
	})

	t.Run("provider failure absorbed as no results", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryCoffee, 2000, "", 10).
			Return(nil, assert.AnError)

		result, err := uc.Search(context.Background(), baseRequest)
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrNoResults, err)
	})

	t.Run("brand filter eliminating all candidates surfaces no results", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		req := baseRequest
		req.Brands = []string{"星巴克"}

		pois := []domain.POI{{ID: "a", Name: "某咖啡", Distance: 300}}
		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryCoffee, 2000, "星巴克", 10).
			Return(pois, nil)

		result, err := uc.Search(context.Background(), req)
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrNoResults, err)
	})

	t.Run("limit is clamped before use", func(t *testing.T) {
		placeRepo := new(MockPlaceRepository)
		uc := newSearchUseCase(placeRepo)

		req := baseRequest
		req.Limit = 99
		req.Radius = 999999

		pois := []domain.POI{{ID: "a", Name: "星巴克", Distance: 300}}
		placeRepo.On("SearchNearby", mock.Anything, userLocation, domain.CategoryCoffee, domain.MaxRadius, "", domain.MaxLimit*2).
			Return(pois, nil)

		_, err := uc.Search(context.Background(), req)
		require.NoError(t, err)
		placeRepo.AssertExpectations(t)
	})
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredQuery_Normalize(t *testing.T) {
	t.Run("empty query gets defaults", func(t *testing.T) {
		q := StructuredQuery{}
		q.Normalize()

		assert.Equal(t, DefaultCategory, q.Category)
		assert.Equal(t, DefaultRadius, q.Radius)
		assert.Equal(t, DefaultLimit, q.Limit)
	})

	t.Run("radius is clamped", func(t *testing.T) {
		q := StructuredQuery{Category: CategoryHotel, Radius: 50, Limit: 5}
		q.Normalize()
		assert.Equal(t, MinRadius, q.Radius)

		q = StructuredQuery{Category: CategoryHotel, Radius: 100000, Limit: 5}
		q.Normalize()
		assert.Equal(t, MaxRadius, q.Radius)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		q := StructuredQuery{Category: CategoryHotel, Radius: 1000, Limit: 100}
		q.Normalize()
		assert.Equal(t, MaxLimit, q.Limit)

		q = StructuredQuery{Category: CategoryHotel, Radius: 1000, Limit: -3}
		q.Normalize()
		assert.Equal(t, 1, q.Limit)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		q := StructuredQuery{Category: CategoryCoffee, Radius: 1000, Limit: 3, Brands: []string{"星巴克"}}
		q.Normalize()

		assert.Equal(t, CategoryCoffee, q.Category)
		assert.Equal(t, 1000, q.Radius)
		assert.Equal(t, 3, q.Limit)
		assert.Equal(t, []string{"星巴克"}, q.Brands)
	})

	t.Run("empty brand slice becomes nil", func(t *testing.T) {
		q := StructuredQuery{Category: CategoryCoffee, Brands: []string{}}
		q.Normalize()
		assert.Nil(t, q.Brands)
	})
}

func TestNormalizeSortMode(t *testing.T) {
	cases := []struct {
		raw  string
		want SortMode
	}{
		{"", SortByDistance},
		{"distance", SortByDistance},
		{"transit", SortByTransit},
		{"rating", SortByRating},
		{"composite", SortByComposite},
		{"距离地铁站最近", SortByTransit},
		{"离地铁近", SortByTransit},
		{"综合排序", SortByComposite},
		{"评分最高", SortByRating},
		{"随便排", SortByDistance},
		{"nonsense", SortByDistance},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeSortMode(tc.raw), tc.raw)
	}
}

func TestCategoryTypeCode(t *testing.T) {
	assert.Equal(t, "100000", CategoryTypeCode(CategoryHotel))
	assert.Equal(t, "150500", CategoryTypeCode(CategorySubway))
	// Неизвестная категория уходит провайдеру без кода типа
	assert.Equal(t, "", CategoryTypeCode("动物园"))
}

func TestTravelModeAPI(t *testing.T) {
	assert.Equal(t, "walking", TravelModeAPI(TravelModeWalking))
	assert.Equal(t, "driving", TravelModeAPI(TravelModeDriving))
	assert.Equal(t, "integrated", TravelModeAPI(TravelModeTransit))
	assert.Equal(t, "walking", TravelModeAPI("flying"))
}

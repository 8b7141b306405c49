package domain

import "strings"

// Режимы сортировки результатов поиска
type SortMode string

const (
	SortByDistance  SortMode = "distance"  // по расстоянию до пользователя (по умолчанию)
	SortByTransit   SortMode = "transit"   // по расстоянию до ближайшей станции метро
	SortByRating    SortMode = "rating"    // по рейтингу (данных нет, работает как distance)
	SortByComposite SortMode = "composite" // взвешенная оценка: расстояние + метро
)

// Значения по умолчанию и границы для структурированного запроса
const (
	DefaultCategory = CategoryDining
	DefaultRadius   = 5000
	DefaultLimit    = 10
	MinRadius       = 100
	MaxRadius       = 50000
	MaxLimit        = 20
)

// StructuredQuery - структурированный запрос, извлечённый из свободного текста
type StructuredQuery struct {
	Category         string      `json:"category"`
	Subcategory      string      `json:"subcategory,omitempty"`
	Radius           int         `json:"radius"`
	Limit            int         `json:"limit"`
	SortBy           SortMode    `json:"sort_by,omitempty"`
	Brands           []string    `json:"brands,omitempty"`
	Proximity        string      `json:"proximity,omitempty"`
	LocationOverride *Coordinate `json:"location_override,omitempty"`
	LocationLabel    string      `json:"location_label,omitempty"`
}

// Normalize приводит запрос к инвариантам: категория всегда задана,
// радиус и количество всегда в допустимых границах
func (q *StructuredQuery) Normalize() {
	if q.Category == "" {
		q.Category = DefaultCategory
	}
	if q.Radius == 0 {
		q.Radius = DefaultRadius
	}
	if q.Radius < MinRadius {
		q.Radius = MinRadius
	}
	if q.Radius > MaxRadius {
		q.Radius = MaxRadius
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if len(q.Brands) == 0 {
		q.Brands = nil
	}
}

// NormalizeSortMode распознаёт режим сортировки в свободной формулировке
// ("距离地铁站最近", "评分最高" и т.п.). Неизвестные значения трактуются
// как сортировка по расстоянию.
func NormalizeSortMode(raw string) SortMode {
	switch {
	case raw == "":
		return SortByDistance
	case SortMode(raw) == SortByTransit || strings.Contains(raw, "地铁"):
		return SortByTransit
	case SortMode(raw) == SortByComposite || strings.Contains(raw, "综合"):
		return SortByComposite
	case SortMode(raw) == SortByRating || strings.Contains(raw, "评分"):
		return SortByRating
	default:
		return SortByDistance
	}
}

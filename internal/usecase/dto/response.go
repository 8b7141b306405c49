package dto

import (
	"fmt"

	"github.com/geonav-service/internal/domain"
)

// ParseQueryResponse - ответ на разбор запроса
type ParseQueryResponse struct {
	Query   *domain.StructuredQuery `json:"query"`
	Display map[string]string       `json:"display"`
}

// NewParseQueryResponse собирает ответ вместе с человекочитаемым
// описанием распознанных параметров
func NewParseQueryResponse(query *domain.StructuredQuery) *ParseQueryResponse {
	displayType := query.Category
	if query.Subcategory != "" {
		displayType = query.Subcategory
	}

	displayRange := fmt.Sprintf("%d米", query.Radius)
	if query.Radius >= 1000 {
		displayRange = fmt.Sprintf("%g公里", float64(query.Radius)/1000)
	}

	return &ParseQueryResponse{
		Query: query,
		Display: map[string]string{
			"type":  displayType,
			"range": displayRange,
			"count": fmt.Sprintf("%d个", query.Limit),
			"sort":  sortLabel(query.SortBy),
		},
	}
}

// SearchResponse - ответ на поиск мест
type SearchResponse struct {
	Total   int          `json:"total"`
	Results []domain.POI `json:"results"`
}

// RouteResponse - ответ на построение маршрута
type RouteResponse struct {
	Route *domain.Route `json:"route"`
}

func sortLabel(mode domain.SortMode) string {
	switch mode {
	case domain.SortByTransit:
		return "距离地铁站最近"
	case domain.SortByRating:
		return "评分最高"
	case domain.SortByComposite:
		return "综合排序"
	default:
		return "距离最近"
	}
}

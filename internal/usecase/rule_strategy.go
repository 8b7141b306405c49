package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/geonav-service/internal/domain"
)

// Шаблоны извлечения параметров из текста запроса.
// Паттерн метров проверяется после паттерна километров и перезаписывает
// его результат - порядок фиксирован и менять его нельзя.
var (
	kmPattern    = regexp.MustCompile(`(\d+)\s*(公里|km|千米)`)
	meterPattern = regexp.MustCompile(`(\d+)\s*(米|m)`)
	countPattern = regexp.MustCompile(`(\d+)\s*个`)

	// Паттерны упоминания места, в порядке приоритета
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([\p{Han}A-Za-z0-9]+?)(?:附近|周边|旁边)`),
		regexp.MustCompile(`(?:在|去)([\p{Han}A-Za-z0-9]+?)(?:找|搜)`),
	}
)

// locationStoplist - служебные слова, которые не являются названием места
var locationStoplist = map[string]bool{
	"附近":  true,
	"我":   true,
	"这":   true,
	"这里":  true,
	"这附近": true,
}

// RuleStrategy - детерминированный разбор запроса по правилам.
// Последняя стратегия цепочки: всегда возвращает полностью заполненный
// запрос и никогда не завершается ошибкой.
type RuleStrategy struct{}

// NewRuleStrategy создает стратегию разбора по правилам
func NewRuleStrategy() *RuleStrategy {
	return &RuleStrategy{}
}

// Name возвращает имя стратегии
func (s *RuleStrategy) Name() string {
	return "rules"
}

// Interpret разбирает сообщение по фиксированным правилам
func (s *RuleStrategy) Interpret(_ context.Context, message string, _ domain.Coordinate) (*domain.StructuredQuery, error) {
	query := &domain.StructuredQuery{
		Category: domain.DefaultCategory,
		Radius:   domain.DefaultRadius,
		Limit:    domain.DefaultLimit,
		SortBy:   domain.SortByDistance,
	}

	s.extractCategory(message, query)
	s.extractRadius(message, query)
	s.extractLimit(message, query)
	s.extractBrand(message, query)
	s.extractProximity(message, query)
	s.extractLocation(message, query)

	query.Normalize()
	return query, nil
}

// extractCategory определяет категорию по взаимоисключающей цепочке
// ключевых слов: побеждает первая совпавшая группа
func (s *RuleStrategy) extractCategory(message string, query *domain.StructuredQuery) {
	switch {
	case strings.Contains(message, "酒店") || strings.Contains(message, "宾馆"):
		query.Category = domain.CategoryHotel
		if strings.Contains(message, "经济型") || strings.Contains(message, "快捷") {
			query.Subcategory = domain.SubcategoryBudgetHotel
		}
	case strings.Contains(message, "咖啡") || strings.Contains(message, "星巴克"):
		query.Category = domain.CategoryCoffee
	case strings.Contains(message, "便利店"):
		query.Category = domain.CategoryConvenience
	case strings.Contains(message, "地铁"):
		query.Category = domain.CategorySubway
	case strings.Contains(message, "商场") || strings.Contains(message, "购物"):
		query.Category = domain.CategoryMall
	}
}

// extractRadius извлекает радиус поиска из фраз с километрами и метрами
func (s *RuleStrategy) extractRadius(message string, query *domain.StructuredQuery) {
	if m := kmPattern.FindStringSubmatch(message); m != nil {
		query.Radius = atoi(m[1]) * 1000
	}
	if m := meterPattern.FindStringSubmatch(message); m != nil {
		query.Radius = atoi(m[1])
	}
}

// extractLimit извлекает запрошенное количество результатов
func (s *RuleStrategy) extractLimit(message string, query *domain.StructuredQuery) {
	if m := countPattern.FindStringSubmatch(message); m != nil {
		limit := atoi(m[1])
		if limit > domain.MaxLimit {
			limit = domain.MaxLimit
		}
		query.Limit = limit
	}
}

// extractBrand ищет первое упоминание известного бренда; поиск
// останавливается на первом совпадении
func (s *RuleStrategy) extractBrand(message string, query *domain.StructuredQuery) {
	for _, group := range domain.BrandLexicon {
		for _, brand := range group.Brands {
			if strings.Contains(message, brand) {
				query.Brands = []string{brand}
				return
			}
		}
	}
}

// extractProximity распознает запросы "поближе к метро"
func (s *RuleStrategy) extractProximity(message string, query *domain.StructuredQuery) {
	if strings.Contains(message, "地铁") && (strings.Contains(message, "最近") || strings.Contains(message, "近")) {
		query.SortBy = domain.SortByTransit
		query.Proximity = domain.CategorySubway
	}
}

// extractLocation извлекает явно упомянутое место; служебные слова
// из стоп-листа местом не считаются
func (s *RuleStrategy) extractLocation(message string, query *domain.StructuredQuery) {
	for _, pattern := range locationPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}

		candidate := strings.TrimLeft(m[1], "在去")
		if candidate == "" || locationStoplist[candidate] {
			continue
		}

		query.LocationLabel = candidate
		return
	}
}

// atoi разбирает число, уже проверенное регулярным выражением
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"github.com/geonav-service/internal/config"
	"github.com/geonav-service/internal/domain"
)

// Strategy разбирает запрос через OpenAI-совместимый чат-бэкенд.
// Любая ошибка (сеть, статус, кривой JSON) возвращается вызывающему,
// который переходит к следующей стратегии.
type Strategy struct {
	client  llms.Model
	name    string
	timeout time.Duration
	logger  *zap.Logger
}

// parsedQuery - промежуточная структура под JSON ответа модели
type parsedQuery struct {
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Radius       float64  `json:"radius"`
	Limit        float64  `json:"limit"`
	SortBy       string   `json:"sort_by"`
	Brands       []string `json:"brands"`
	Proximity    string   `json:"proximity"`
	LocationName string   `json:"location_name"`
}

// NewStrategy создает стратегию разбора для одного LLM бэкенда
func NewStrategy(backend config.LLMBackend, timeout time.Duration, logger *zap.Logger) (*Strategy, error) {
	client, err := openai.New(
		openai.WithBaseURL(backend.BaseURL),
		openai.WithToken(backend.APIKey),
		openai.WithModel(backend.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", backend.Name, err)
	}

	return &Strategy{
		client:  client,
		name:    backend.Name,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Name возвращает имя бэкенда
func (s *Strategy) Name() string {
	return s.name
}

// Interpret отправляет сообщение пользователя модели и собирает
// структурированный запрос из её JSON ответа
func (s *Strategy) Interpret(ctx context.Context, message string, location domain.Coordinate) (*domain.StructuredQuery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt(message, location))},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		return nil, fmt.Errorf("%s: generate content: %w", s.name, err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%s: no choices in model response", s.name)
	}

	raw, err := extractJSON(response.Choices[0].Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}

	var parsed parsedQuery
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("Failed to parse model response",
			zap.String("backend", s.name),
			zap.String("response", raw),
			zap.Error(err))
		return nil, fmt.Errorf("%s: unmarshal model response: %w", s.name, err)
	}

	query := &domain.StructuredQuery{
		Category:      parsed.Category,
		Subcategory:   parsed.Subcategory,
		Radius:        int(parsed.Radius),
		Limit:         int(parsed.Limit),
		SortBy:        domain.NormalizeSortMode(parsed.SortBy),
		Brands:        parsed.Brands,
		Proximity:     parsed.Proximity,
		LocationLabel: parsed.LocationName,
	}
	query.Normalize()

	return query, nil
}

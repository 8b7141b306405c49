package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geonav-service/internal/pkg/utils"
	"github.com/geonav-service/internal/pkg/validator"
	"github.com/geonav-service/internal/usecase"
	"github.com/geonav-service/internal/usecase/dto"
)

// SearchHandler - обработчик поисковых запросов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск мест по структурированному запросу
// @Description Ищет места вокруг пользователя по категории, радиусу и ключевым словам, обогащает их ближайшими станциями метро и ранжирует по выбранному критерию. Сбои провайдера поиска наружу не видны: для клиента это пустой результат.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Структурированный запрос"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

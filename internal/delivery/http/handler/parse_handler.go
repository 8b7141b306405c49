package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/pkg/errors"
	"github.com/geonav-service/internal/pkg/utils"
	"github.com/geonav-service/internal/pkg/validator"
	"github.com/geonav-service/internal/usecase"
	"github.com/geonav-service/internal/usecase/dto"
)

// ParseHandler - обработчик разбора свободного текста
type ParseHandler struct {
	interpretUC *usecase.InterpretUseCase
	logger      *zap.Logger
}

// NewParseHandler - создание нового ParseHandler
func NewParseHandler(interpretUC *usecase.InterpretUseCase, logger *zap.Logger) *ParseHandler {
	return &ParseHandler{
		interpretUC: interpretUC,
		logger:      logger,
	}
}

// ParseQuery godoc
// @Summary Разбор запроса на естественном языке
// @Description Превращает свободный текст ("найди 3 отеля возле метро") в структурированный запрос: категория, радиус, количество, сортировка, бренды. Разбор не ошибается никогда: при недоступности LLM срабатывает разбор по правилам.
// @Tags Parse
// @Accept json
// @Produce json
// @Param request body dto.ParseQueryRequest true "Сообщение пользователя и его координаты"
// @Success 200 {object} utils.SuccessResponse{data=dto.ParseQueryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/parse-query [post]
func (h *ParseHandler) ParseQuery(c *fiber.Ctx) error {
	var req dto.ParseQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	location := domain.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	if !location.Valid() {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	query := h.interpretUC.Interpret(c.Context(), req.Message, location)

	return utils.SendSuccess(c, dto.NewParseQueryResponse(query), nil)
}

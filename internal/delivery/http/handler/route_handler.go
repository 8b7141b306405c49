package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geonav-service/internal/pkg/utils"
	"github.com/geonav-service/internal/pkg/validator"
	"github.com/geonav-service/internal/usecase"
	"github.com/geonav-service/internal/usecase/dto"
)

// RouteHandler - обработчик маршрутизации
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// PlanRoute godoc
// @Summary Построение маршрута
// @Description Строит маршрут между двумя точками (пешком, на машине или общественным транспортом). Возвращает дистанцию, время в минутах и до 10 шагов маршрута.
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Начало, конец и способ передвижения"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/route [post]
func (h *RouteHandler) PlanRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.PlanRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

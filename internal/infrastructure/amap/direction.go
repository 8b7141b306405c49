package amap

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
)

// maxRouteSteps - сколько шагов маршрута возвращается клиенту
const maxRouteSteps = 10

type directionResponse struct {
	Status string `json:"status"`
	Route  struct {
		Paths []struct {
			Distance string `json:"distance"`
			Duration string `json:"duration"`
			Steps    []struct {
				Instruction string `json:"instruction"`
				Distance    string `json:"distance"`
				Duration    string `json:"duration"`
			} `json:"steps"`
		} `json:"paths"`
	} `json:"route"`
}

// GetRoute строит маршрут между двумя точками.
// Возвращает (nil, nil) если провайдер не нашел маршрут.
func (c *Client) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode string,
) (*domain.Route, error) {
	apiMode := domain.TravelModeAPI(mode)

	params := url.Values{}
	params.Set("origin", formatLocation(origin))
	params.Set("destination", formatLocation(destination))

	var resp directionResponse
	if err := c.get(ctx, "/direction/"+apiMode, params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "1" || len(resp.Route.Paths) == 0 {
		c.logger.Debug("Direction returned no paths",
			zap.String("mode", mode),
			zap.String("status", resp.Status))
		return nil, nil
	}

	// Берём первую (оптимальную по мнению провайдера) альтернативу
	path := resp.Route.Paths[0]

	route := &domain.Route{
		Distance: parseFloat(path.Distance),
		Duration: parseFloat(path.Duration) / 60, // секунды -> минуты
		Mode:     mode,
	}

	steps := path.Steps
	if len(steps) > maxRouteSteps {
		steps = steps[:maxRouteSteps]
	}
	for _, step := range steps {
		route.Steps = append(route.Steps, domain.RouteStep{
			Instruction: step.Instruction,
			Distance:    parseFloat(step.Distance),
			Duration:    parseFloat(step.Duration) / 60,
		})
	}

	return route, nil
}

// parseFloat разбирает числовое поле провайдера; провайдер отдаёт числа строками
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

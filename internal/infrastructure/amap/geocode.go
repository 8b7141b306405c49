package amap

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
)

type geocodeResponse struct {
	Status   string `json:"status"`
	Geocodes []struct {
		Location string `json:"location"`
	} `json:"geocodes"`
}

// Geocode преобразует название места в координату.
// Возвращает (nil, nil) если провайдер ничего не нашел.
func (c *Client) Geocode(ctx context.Context, address, city string) (*domain.Coordinate, error) {
	if city == "" {
		city = "全国"
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("city", city)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/geo", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "1" || len(resp.Geocodes) == 0 {
		c.logger.Debug("Geocode returned no results",
			zap.String("address", address),
			zap.String("status", resp.Status))
		return nil, nil
	}

	// Первый кандидат считается лучшим
	coord, err := parseLocation(resp.Geocodes[0].Location)
	if err != nil {
		c.logger.Warn("Geocode returned malformed location",
			zap.String("address", address),
			zap.Error(err))
		return nil, nil
	}

	return &coord, nil
}

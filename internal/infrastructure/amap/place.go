package amap

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/geonav-service/internal/domain"
	"github.com/geonav-service/internal/pkg/utils"
)

// transitStopLimit - фиксированный потолок количества станций метро
const transitStopLimit = 20

type placeResponse struct {
	Status string `json:"status"`
	POIs   []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		Tel      string `json:"tel"`
		Location string `json:"location"`
	} `json:"pois"`
}

// SearchNearby возвращает POI вокруг точки с уже вычисленным расстоянием.
// Запрашивается двойной лимит (не более 50) - запас под последующую фильтрацию.
func (c *Client) SearchNearby(
	ctx context.Context,
	center domain.Coordinate,
	category string,
	radius int,
	keywords string,
	limit int,
) ([]domain.POI, error) {
	offset := limit * 2
	if offset > 50 {
		offset = 50
	}

	params := url.Values{}
	params.Set("location", formatLocation(center))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("types", domain.CategoryTypeCode(category))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("extensions", "all")
	if keywords != "" {
		params.Set("keywords", keywords)
	}

	var resp placeResponse
	if err := c.get(ctx, "/place/around", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "1" || len(resp.POIs) == 0 {
		c.logger.Debug("Place search returned no results",
			zap.String("category", category),
			zap.String("status", resp.Status))
		return nil, nil
	}

	raw := resp.POIs
	if len(raw) > limit*2 {
		raw = raw[:limit*2]
	}

	results := make([]domain.POI, 0, len(raw))
	for _, poi := range raw {
		loc, err := parseLocation(poi.Location)
		if err != nil {
			// Запись без координат бесполезна для ранжирования - пропускаем
			c.logger.Debug("Skipping POI with malformed location",
				zap.String("id", poi.ID),
				zap.Error(err))
			continue
		}

		results = append(results, domain.POI{
			ID:       poi.ID,
			Name:     poi.Name,
			Category: category,
			Location: loc,
			Address:  poi.Address,
			Distance: utils.HaversineDistance(center.Lat, center.Lng, loc.Lat, loc.Lng),
			Phone:    poi.Tel,
		})
	}

	return results, nil
}

// SearchTransitStops возвращает станции метро вокруг точки
func (c *Client) SearchTransitStops(
	ctx context.Context,
	center domain.Coordinate,
	radius int,
) ([]domain.TransitStop, error) {
	pois, err := c.SearchNearby(ctx, center, domain.CategorySubway, radius, "", transitStopLimit)
	if err != nil {
		return nil, err
	}

	stops := make([]domain.TransitStop, 0, len(pois))
	for _, poi := range pois {
		stops = append(stops, domain.TransitStop{
			Name:     poi.Name,
			Location: poi.Location,
		})
	}

	return stops, nil
}

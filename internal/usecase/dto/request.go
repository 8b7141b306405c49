package dto

// Location - координаты точки
type Location struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// ParseQueryRequest - запрос на разбор свободного текста
type ParseQueryRequest struct {
	Message  string   `json:"message" validate:"required,min=1,max=500"`
	Location Location `json:"location" validate:"required"`
}

// SearchRequest - запрос на поиск мест
type SearchRequest struct {
	Category         string    `json:"category" validate:"required"`
	Subcategory      string    `json:"subcategory,omitempty"`
	Radius           int       `json:"radius" validate:"omitempty,min=100,max=50000"`
	Limit            int       `json:"limit" validate:"omitempty,min=1,max=20"`
	SortBy           string    `json:"sort_by,omitempty"`
	Brands           []string  `json:"brands,omitempty" validate:"omitempty,min=1,dive,required"`
	Proximity        string    `json:"proximity,omitempty"`
	Location         Location  `json:"location" validate:"required"`
	LocationOverride *Location `json:"location_override,omitempty"`
}

// RouteRequest - запрос на построение маршрута
type RouteRequest struct {
	Origin      Location `json:"origin" validate:"required"`
	Destination Location `json:"destination" validate:"required"`
	Mode        string   `json:"mode" validate:"omitempty,oneof=walking driving transit"`
}

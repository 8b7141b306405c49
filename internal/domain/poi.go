package domain

// POI представляет точку интереса, найденную в справочнике мест
type POI struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand,omitempty"`
	Location       Coordinate        `json:"location"`
	Address        string            `json:"address"`
	Distance       float64           `json:"distance"` // метры до пользователя, всегда считается сервисом
	Phone          string            `json:"phone,omitempty"`
	NearestTransit *TransitProximity `json:"nearest_subway,omitempty"`
}

// TransitProximity - ближайшая станция метро и расстояние до неё.
// Отсутствие поля означает "не вычислялось", а не "станций нет".
type TransitProximity struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"` // метры
}

// TransitStop - станция метро, используется только при обогащении
type TransitStop struct {
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

package domain

// Способы передвижения для маршрутизации
const (
	TravelModeWalking = "walking"
	TravelModeDriving = "driving"
	TravelModeTransit = "transit"
)

// travelModeAPI - отображение способа передвижения в режим API провайдера
var travelModeAPI = map[string]string{
	TravelModeWalking: "walking",
	TravelModeDriving: "driving",
	TravelModeTransit: "integrated",
}

// TravelModeAPI возвращает режим API провайдера; неизвестный режим
// трактуется как пешеходный
func TravelModeAPI(mode string) string {
	if m, ok := travelModeAPI[mode]; ok {
		return m
	}
	return travelModeAPI[TravelModeWalking]
}

// Route - построенный маршрут
type Route struct {
	Distance float64     `json:"distance"` // метры
	Duration float64     `json:"duration"` // минуты
	Mode     string      `json:"mode"`
	Steps    []RouteStep `json:"steps"`
}

// RouteStep - один шаг маршрута
type RouteStep struct {
	Instruction string  `json:"instruction"`
	Distance    float64 `json:"distance"` // метры
	Duration    float64 `json:"duration"` // минуты
}

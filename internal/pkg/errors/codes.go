package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	// ErrNoResults - поиск выполнен успешно, но ничего не найдено
	ErrNoResults = New(
		"NO_RESULTS",
		"未找到符合条件的地点，请尝试放宽搜索条件",
		http.StatusNotFound,
	)

	// ErrRouteNotFound - маршрут между точками построить не удалось
	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"无法规划路线，请检查起点和终点",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

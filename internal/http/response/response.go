// Package response содержит единый формат JSON-ответов HTTP-обработчиков.
package response

// Response стандартный ответ сервера.
// Поле Data присутствует всегда, при ошибке оно равно null.
type Response struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Retrieved monthly game usage"`
	Data    any    `json:"data"`
}

// ErrorResponse ответ с ошибкой для Swagger-документации.
type ErrorResponse struct {
	Status  string `json:"status" example:"Error"`
	Message string `json:"message" example:"Bad GameID ''"`
	Data    any    `json:"data" swaggertype:"object"`
}

const (
	// StatusOK значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OK возвращает успешный Response с сообщением и данными.
func OK(msg string, data any) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
		Data:    data,
	}
}

// Error возвращает Response с ошибкой и пустыми данными.
func Error(msg string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
	}
}

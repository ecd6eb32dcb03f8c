package errors

import (
	"fmt"
)

type ErrMissingEnvVar struct {
	Name string
}

func (e *ErrMissingEnvVar) Error() string {
	return fmt.Sprintf("Отсутствует обязательная переменная окружения: %q", e.Name)
}

func (e *ErrMissingEnvVar) Is(target error) bool {
	_, ok := target.(*ErrMissingEnvVar)
	return ok
}

type ErrAPIRequest struct {
	Cause error
}

func (e *ErrAPIRequest) Error() string {
	return fmt.Sprintf("Ошибка при запросе к API: %v", e.Cause)
}

func (e *ErrAPIRequest) Unwrap() error {
	return e.Cause
}

func (e *ErrAPIRequest) Is(target error) bool {
	_, ok := target.(*ErrAPIRequest)
	return ok
}

type ErrEndpointUnavailable struct {
	Endpoint   string
	StatusCode int
}

func (e *ErrEndpointUnavailable) Error() string {
	return fmt.Sprintf("Эндпоинт %s недоступен. Код ответа API: %d", e.Endpoint, e.StatusCode)
}

func (e *ErrEndpointUnavailable) Is(target error) bool {
	_, ok := target.(*ErrEndpointUnavailable)
	return ok
}

type ErrResponseNotMap struct{}

func (e *ErrResponseNotMap) Error() string {
	return "Ответ API не является словарём"
}

func (e *ErrResponseNotMap) Is(target error) bool {
	_, ok := target.(*ErrResponseNotMap)
	return ok
}

type ErrMissingResponseKeys struct{}

func (e *ErrMissingResponseKeys) Error() string {
	return "Отсутствуют ожидаемые ключи в ответе API"
}

func (e *ErrMissingResponseKeys) Is(target error) bool {
	_, ok := target.(*ErrMissingResponseKeys)
	return ok
}

type ErrHomeworksNotList struct{}

func (e *ErrHomeworksNotList) Error() string {
	return `Поле "homeworks" не является списком`
}

func (e *ErrHomeworksNotList) Is(target error) bool {
	_, ok := target.(*ErrHomeworksNotList)
	return ok
}

type ErrMissingHomeworkKeys struct{}

func (e *ErrMissingHomeworkKeys) Error() string {
	return "Отсутствуют ожидаемые ключи в ответе о домашней работе"
}

func (e *ErrMissingHomeworkKeys) Is(target error) bool {
	_, ok := target.(*ErrMissingHomeworkKeys)
	return ok
}

type ErrUnknownHomeworkStatus struct {
	Status string
}

func (e *ErrUnknownHomeworkStatus) Error() string {
	return "Недокументированный статус домашней работы: " + e.Status
}

func (e *ErrUnknownHomeworkStatus) Is(target error) bool {
	_, ok := target.(*ErrUnknownHomeworkStatus)
	return ok
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

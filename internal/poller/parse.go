package poller

import (
	"bytes"
	"encoding/json"
	"fmt"

	domainerrors "github.com/central-university-dev/go-homework-bot/internal/domain/errors"
	"github.com/central-university-dev/go-homework-bot/internal/domain/models"
)

// CheckResponse проверяет структуру сырого ответа API и возвращает
// типизированный результат. Функция чистая: повторный вызов на корректном
// теле возвращает идентичный результат.
// JSON null проходит Unmarshal в map, slice и указатель без ошибки,
// поэтому null на каждом уровне отсеивается отдельно.
func CheckResponse(body json.RawMessage) (*models.StatusResponse, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || probe == nil {
		return nil, &domainerrors.ErrResponseNotMap{}
	}

	rawHomeworks, hasHomeworks := probe["homeworks"]
	rawDate, hasDate := probe["current_date"]

	if !hasHomeworks || !hasDate {
		return nil, &domainerrors.ErrMissingResponseKeys{}
	}

	if isJSONNull(rawHomeworks) {
		return nil, &domainerrors.ErrHomeworksNotList{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawHomeworks, &items); err != nil {
		return nil, &domainerrors.ErrHomeworksNotList{}
	}

	var currentDate *int64
	if err := json.Unmarshal(rawDate, &currentDate); err != nil || currentDate == nil {
		return nil, &domainerrors.ErrMissingResponseKeys{}
	}

	homeworks := make([]models.Homework, 0, len(items))

	for _, item := range items {
		var homework models.Homework
		if err := json.Unmarshal(item, &homework); err != nil {
			return nil, &domainerrors.ErrMissingHomeworkKeys{}
		}

		homeworks = append(homeworks, homework)
	}

	return &models.StatusResponse{
		Homeworks:   homeworks,
		CurrentDate: *currentDate,
	}, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ParseStatus преобразует запись о домашней работе в текст уведомления.
func ParseStatus(homework models.Homework) (string, error) {
	if homework.Name == "" || homework.Status == "" {
		return "", &domainerrors.ErrMissingHomeworkKeys{}
	}

	verdict, known := models.HomeworkVerdicts[homework.Status]
	if !known {
		return "", &domainerrors.ErrUnknownHomeworkStatus{Status: string(homework.Status)}
	}

	return fmt.Sprintf("Изменился статус проверки работы %q. %s", homework.Name, verdict), nil
}

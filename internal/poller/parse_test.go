package poller_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/central-university-dev/go-homework-bot/internal/domain/errors"
	"github.com/central-university-dev/go-homework-bot/internal/domain/models"
	"github.com/central-university-dev/go-homework-bot/internal/poller"
)

func TestCheckResponse_ValidBody(t *testing.T) {
	body := json.RawMessage(`{"homeworks": [{"homework_name": "hw1", "status": "approved"}], "current_date": 1700000100}`)

	response, err := poller.CheckResponse(body)

	require.NoError(t, err)
	assert.Equal(t, int64(1700000100), response.CurrentDate)
	require.Len(t, response.Homeworks, 1)
	assert.Equal(t, "hw1", response.Homeworks[0].Name)
	assert.Equal(t, models.StatusApproved, response.Homeworks[0].Status)
}

func TestCheckResponse_EmptyHomeworks(t *testing.T) {
	body := json.RawMessage(`{"homeworks": [], "current_date": 1700000200}`)

	response, err := poller.CheckResponse(body)

	require.NoError(t, err)
	assert.Empty(t, response.Homeworks)
	assert.Equal(t, int64(1700000200), response.CurrentDate)
}

func TestCheckResponse_Idempotent(t *testing.T) {
	body := json.RawMessage(`{"homeworks": [{"homework_name": "hw1", "status": "reviewing"}], "current_date": 1700000100}`)

	first, err := poller.CheckResponse(body)
	require.NoError(t, err)

	second, err := poller.CheckResponse(body)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCheckResponse_NotMap(t *testing.T) {
	body := json.RawMessage(`[{"homework_name": "hw1", "status": "approved"}]`)

	_, err := poller.CheckResponse(body)

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrResponseNotMap{})
}

func TestCheckResponse_MissingKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "нет homeworks", body: `{"current_date": 1700000100}`},
		{name: "нет current_date", body: `{"homeworks": []}`},
		{name: "пустой объект", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := poller.CheckResponse(json.RawMessage(tt.body))

			require.Error(t, err)
			assert.ErrorIs(t, err, &domainerrors.ErrMissingResponseKeys{})
		})
	}
}

func TestCheckResponse_NullBody(t *testing.T) {
	_, err := poller.CheckResponse(json.RawMessage(`null`))

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrResponseNotMap{})
}

func TestCheckResponse_HomeworksNotList(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "объект вместо списка", body: `{"homeworks": {"homework_name": "hw1"}, "current_date": 1700000100}`},
		{name: "null вместо списка", body: `{"homeworks": null, "current_date": 1700000100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := poller.CheckResponse(json.RawMessage(tt.body))

			require.Error(t, err)
			assert.ErrorIs(t, err, &domainerrors.ErrHomeworksNotList{})
		})
	}
}

func TestCheckResponse_BadCurrentDate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null вместо числа", body: `{"homeworks": [], "current_date": null}`},
		{name: "строка вместо числа", body: `{"homeworks": [], "current_date": "1700000100"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := poller.CheckResponse(json.RawMessage(tt.body))

			require.Error(t, err)
			assert.ErrorIs(t, err, &domainerrors.ErrMissingResponseKeys{})
		})
	}
}

func TestParseStatus_KnownVerdicts(t *testing.T) {
	tests := []struct {
		status  models.HomeworkStatus
		message string
	}{
		{
			status:  models.StatusApproved,
			message: `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			status:  models.StatusReviewing,
			message: `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		},
		{
			status:  models.StatusRejected,
			message: `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			message, err := poller.ParseStatus(models.Homework{Name: "hw1", Status: tt.status})

			require.NoError(t, err)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestParseStatus_UnknownStatus(t *testing.T) {
	_, err := poller.ParseStatus(models.Homework{Name: "hw1", Status: "unknown_status"})

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrUnknownHomeworkStatus{})
	assert.Contains(t, err.Error(), "Недокументированный статус")
}

func TestParseStatus_MissingKeys(t *testing.T) {
	tests := []struct {
		name     string
		homework models.Homework
	}{
		{name: "нет имени", homework: models.Homework{Status: models.StatusApproved}},
		{name: "нет статуса", homework: models.Homework{Name: "hw1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := poller.ParseStatus(tt.homework)

			require.Error(t, err)
			assert.ErrorIs(t, err, &domainerrors.ErrMissingHomeworkKeys{})
		})
	}
}

package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/central-university-dev/go-homework-bot/internal/common/httputil"
	"github.com/central-university-dev/go-homework-bot/internal/common/metrics"
	"github.com/central-university-dev/go-homework-bot/internal/config"
	domainerrors "github.com/central-university-dev/go-homework-bot/internal/domain/errors"
)

var errInvalidJSON = errors.New("тело ответа не является корректным JSON")

// Client опрашивает API Практикума о статусах домашних работ.
type Client struct {
	client   *resty.Client
	token    string
	endpoint string
	logger   *slog.Logger
}

type HomeworkStatusGetter interface {
	GetHomeworkStatuses(ctx context.Context, fromDate int64) (json.RawMessage, error)
}

func NewClient(token, endpoint string, cfg *config.Config, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = cfg.PracticumEndpoint
	}

	client := httputil.CreateResilientHTTPClient(cfg, logger, "practicum")

	return &Client{
		client:   client,
		token:    token,
		endpoint: endpoint,
		logger:   logger,
	}
}

// GetHomeworkStatuses запрашивает статусы работ, изменившиеся после fromDate.
// Возвращает тело ответа как есть, проверка структуры выполняется отдельно.
func (c *Client) GetHomeworkStatuses(ctx context.Context, fromDate int64) (json.RawMessage, error) {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "OAuth "+c.token).
		SetQueryParam("from_date", strconv.FormatInt(fromDate, 10)).
		Get(c.endpoint)

	metrics.APIRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var httpErr *domainerrors.HTTPError
		if errors.As(err, &httpErr) {
			apiErr := &domainerrors.ErrEndpointUnavailable{
				Endpoint:   c.endpoint,
				StatusCode: httpErr.StatusCode,
			}
			c.logger.Error("Эндпоинт недоступен",
				"endpoint", c.endpoint,
				"status", httpErr.StatusCode,
			)

			return nil, apiErr
		}

		c.logger.Error("Ошибка при запросе к API",
			"endpoint", c.endpoint,
			"error", err,
		)

		return nil, &domainerrors.ErrAPIRequest{Cause: err}
	}

	if !resp.IsSuccess() {
		c.logger.Error("Эндпоинт недоступен",
			"endpoint", c.endpoint,
			"status", resp.StatusCode(),
		)

		return nil, &domainerrors.ErrEndpointUnavailable{
			Endpoint:   c.endpoint,
			StatusCode: resp.StatusCode(),
		}
	}

	body := resp.Body()
	if !json.Valid(body) {
		c.logger.Error("Ответ API не является корректным JSON",
			"endpoint", c.endpoint,
		)

		return nil, &domainerrors.ErrAPIRequest{Cause: errInvalidJSON}
	}

	return json.RawMessage(body), nil
}

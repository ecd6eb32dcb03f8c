package config

import (
	"time"

	"github.com/spf13/viper"

	domainerrors "github.com/central-university-dev/go-homework-bot/internal/domain/errors"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

type Config struct {
	PracticumToken    string `mapstructure:"PRACTICUM_TOKEN"`
	TelegramToken     string `mapstructure:"TELEGRAM_TOKEN"`
	TelegramChatID    int64  `mapstructure:"TELEGRAM_CHAT_ID"`
	PracticumEndpoint string `mapstructure:"PRACTICUM_ENDPOINT"`

	PollInterval     time.Duration `mapstructure:"POLL_INTERVAL"`
	ErrorDedupWindow time.Duration `mapstructure:"ERROR_DEDUP_WINDOW"`
	BacklogLimit     int           `mapstructure:"BACKLOG_LIMIT"`

	MetricsPort int `mapstructure:"METRICS_PORT"`

	ExternalRequestTimeout time.Duration `mapstructure:"EXTERNAL_REQUEST_TIMEOUT"`

	TelegramSendRate  float64 `mapstructure:"TELEGRAM_SEND_RATE"`
	TelegramSendBurst int     `mapstructure:"TELEGRAM_SEND_BURST"`

	CBSlidingWindowSize        int           `mapstructure:"CB_SLIDING_WINDOW_SIZE"`
	CBMinimumRequiredCalls     int           `mapstructure:"CB_MINIMUM_REQUIRED_CALLS"`
	CBFailureRateThreshold     int           `mapstructure:"CB_FAILURE_RATE_THRESHOLD"`
	CBPermittedCallsInHalfOpen int           `mapstructure:"CB_PERMITTED_CALLS_IN_HALF_OPEN"`
	CBWaitDurationInOpenState  time.Duration `mapstructure:"CB_WAIT_DURATION_IN_OPEN_STATE"`
}

func LoadConfig() *Config {
	setDefaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return getDefaultConfig()
	}

	return config
}

// Validate проверяет обязательные переменные окружения. Проверка выполняется
// один раз при старте, отсутствие любой из них фатально и не повторяется.
func (c *Config) Validate() error {
	if c.PracticumToken == "" {
		return &domainerrors.ErrMissingEnvVar{Name: "PRACTICUM_TOKEN"}
	}

	if c.TelegramToken == "" {
		return &domainerrors.ErrMissingEnvVar{Name: "TELEGRAM_TOKEN"}
	}

	if c.TelegramChatID == 0 {
		return &domainerrors.ErrMissingEnvVar{Name: "TELEGRAM_CHAT_ID"}
	}

	return nil
}

func setDefaults() {
	// Пустые значения по умолчанию регистрируют ключи во viper,
	// иначе AutomaticEnv не отдаёт их в Unmarshal.
	viper.SetDefault("PRACTICUM_TOKEN", "")
	viper.SetDefault("TELEGRAM_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", 0)

	viper.SetDefault("PRACTICUM_ENDPOINT", defaultEndpoint)

	viper.SetDefault("POLL_INTERVAL", "600s")
	viper.SetDefault("ERROR_DEDUP_WINDOW", "5000s")
	viper.SetDefault("BACKLOG_LIMIT", 100)

	viper.SetDefault("METRICS_PORT", 9095)

	viper.SetDefault("EXTERNAL_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("TELEGRAM_SEND_RATE", 1.0)
	viper.SetDefault("TELEGRAM_SEND_BURST", 5)

	viper.SetDefault("CB_SLIDING_WINDOW_SIZE", 10)
	viper.SetDefault("CB_MINIMUM_REQUIRED_CALLS", 5)
	viper.SetDefault("CB_FAILURE_RATE_THRESHOLD", 50)
	viper.SetDefault("CB_PERMITTED_CALLS_IN_HALF_OPEN", 2)
	viper.SetDefault("CB_WAIT_DURATION_IN_OPEN_STATE", "10s")
}

func getDefaultConfig() *Config {
	return &Config{
		PracticumEndpoint: defaultEndpoint,

		PollInterval:     600 * time.Second,
		ErrorDedupWindow: 5000 * time.Second,
		BacklogLimit:     100,

		MetricsPort: 9095,

		ExternalRequestTimeout: 10 * time.Second,

		TelegramSendRate:  1.0,
		TelegramSendBurst: 5,

		CBSlidingWindowSize:        10,
		CBMinimumRequiredCalls:     5,
		CBFailureRateThreshold:     50,
		CBPermittedCallsInHalfOpen: 2,
		CBWaitDurationInOpenState:  10 * time.Second,
	}
}

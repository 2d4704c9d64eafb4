package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	RedisUrl         string `mapstructure:"REDIS_URL"`
	MongoUri         string `mapstructure:"MONGO_URI"`
	MongoDatabase    string `mapstructure:"MONGO_DATABASE"`
	PuzzleEpoch      string `mapstructure:"PUZZLE_EPOCH"`
	RecordTTLHours   int    `mapstructure:"RECORD_TTL_HOURS"`
	ProgressTTLHours int    `mapstructure:"PROGRESS_TTL_HOURS"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
}

const epochLayout = "2006-01-02"

var defaults = map[string]any{
	"REDIS_URL":          "",
	"MONGO_URI":          "",
	"MONGO_DATABASE":     "josekle",
	"PUZZLE_EPOCH":       "2022-02-01",
	"RECORD_TTL_HOURS":   0,
	"PROGRESS_TTL_HOURS": 48,
	"LOG_LEVEL":          "info",
}

// Setup читает .env-файл cfgPath; переменные окружения важнее файла.
// Отсутствие файла не ошибка: остаются значения по умолчанию и окружение.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
		return nil, err
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if _, err := cfg.Epoch(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Epoch: день первой головоломки, в местном времени.
func (c *Config) Epoch() (time.Time, error) {
	return time.ParseInLocation(epochLayout, c.PuzzleEpoch, time.Local)
}

// RecordTTL: срок хранения записи; ноль значит «без срока».
func (c *Config) RecordTTL() time.Duration {
	return time.Duration(c.RecordTTLHours) * time.Hour
}

func (c *Config) ProgressTTL() time.Duration {
	return time.Duration(c.ProgressTTLHours) * time.Hour
}

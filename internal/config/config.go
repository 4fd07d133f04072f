// Package config предоставляет структуры и функции для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                 string                  `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	LogLevel            string                  `yaml:"log_level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile             string                  `yaml:"log_file" env:"LOG_FILE"`
	APIVersion          string                  `yaml:"api_version" env:"API_VERSION" env-default:"0.0.0-version-not-set"`
	HTTPServer          HTTPServer              `yaml:"http_server"`
	RateLimit           RateLimit               `yaml:"rate_limit"`
	CORS                CORS                    `yaml:"cors"`
	FileIndex           FileIndex               `yaml:"file_index"`
	Links               Links                   `yaml:"links"`
	BigQueryGameMapping map[string]BigQueryGame `yaml:"bigquery_game_mapping" validate:"dive"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080" validate:"required"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RateLimit задаёт ограничение частоты запросов. RPS <= 0 отключает лимитер.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"20"`
	Burst int     `yaml:"burst" env-default:"40"`
}

// CORS список разрешённых источников для cross-origin запросов
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env-default:"*"`
}

// FileIndex описывает, откуда и как забирать file_list.json
type FileIndex struct {
	URL                   string        `yaml:"url" env:"FILE_LIST_URL" env-default:"https://opengamedata.fielddaylab.wisc.edu/data/file_list.json" validate:"required,url"`
	Timeout               time.Duration `yaml:"timeout" env-default:"10s"`
	FilesBaseFallback     string        `yaml:"files_base_fallback" env-default:"https://opengamedata.fielddaylab.wisc.edu/" validate:"required,url"`
	TemplatesBaseFallback string        `yaml:"templates_base_fallback" env-default:"https://github.com/opengamedata/opengamedata-templates" validate:"required,url"`
}

// Links базовые адреса для ссылок на codespaces и исходники детекторов/фич
type Links struct {
	CodespacesBase string `yaml:"codespaces_base" env-default:"https://codespaces.new/opengamedata/opengamedata-samples/tree/" validate:"required,url"`
	GithubBase     string `yaml:"github_base" env-default:"https://github.com/opengamedata/opengamedata-core/tree/" validate:"required,url"`
}

// BigQueryGame настройки доступа к событиям одной игры в BigQuery
type BigQueryGame struct {
	ProjectID       string `yaml:"project_id" validate:"required"`
	DatasetID       string `yaml:"dataset_id" validate:"required"`
	TablePrefix     string `yaml:"table_prefix" validate:"required"`
	CredentialsPath string `yaml:"credentials_path"`
	SchemaType      string `yaml:"schema_type" validate:"required"`
}

// Load читает конфиг по указанному пути и проверяет его.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига, путь берётся из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"LogLevel: %s\n"+
			"LogFile: %s\n"+
			"APIVersion: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n"+
			"FileIndex:\n"+
			"  URL: %s\n"+
			"  Timeout: %s\n"+
			"BigQueryGames: %d\n",
		c.Env,
		c.LogLevel,
		c.LogFile,
		c.APIVersion,
		c.HTTPServer.Address,
		c.HTTPServer.Timeout,
		c.HTTPServer.IdleTimeout,
		c.RateLimit.RPS,
		c.RateLimit.Burst,
		c.FileIndex.URL,
		c.FileIndex.Timeout,
		len(c.BigQueryGameMapping),
	)
}

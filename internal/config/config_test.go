package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
env: prod
log_level: debug
api_version: "1.2.3"
http_server:
  address: ":9090"
  timeout: 30s
  idle_timeout: 90s
rate_limit:
  rps: 5
  burst: 10
cors:
  allowed_origins: ["https://example.org"]
file_index:
  url: "https://files.example.org/data/file_list.json"
  timeout: 3s
bigquery_game_mapping:
  AQUALAB:
    project_id: "aqualab-57f88"
    dataset_id: "analytics_271167280"
    table_prefix: "events_*"
    credentials_path: "./config/aqualab.json"
    schema_type: "EVENTS-FIREBASE"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "1.2.3", cfg.APIVersion)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 90*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"https://example.org"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://files.example.org/data/file_list.json", cfg.FileIndex.URL)
	assert.Equal(t, 3*time.Second, cfg.FileIndex.Timeout)
	require.Contains(t, cfg.BigQueryGameMapping, "AQUALAB")
	assert.Equal(t, "events_*", cfg.BigQueryGameMapping["AQUALAB"].TablePrefix)
	assert.Equal(t, "EVENTS-FIREBASE", cfg.BigQueryGameMapping["AQUALAB"].SchemaType)
}

func TestLoad_DefaultValues(t *testing.T) {
	path := writeConfig(t, `
env: local
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Проверяем значения по умолчанию для необязательных полей
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, 20.0, cfg.RateLimit.RPS)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://opengamedata.fielddaylab.wisc.edu/data/file_list.json", cfg.FileIndex.URL)
	assert.Equal(t, "https://opengamedata.fielddaylab.wisc.edu/", cfg.FileIndex.FilesBaseFallback)
	assert.Equal(t, "https://github.com/opengamedata/opengamedata-templates", cfg.FileIndex.TemplatesBaseFallback)
	assert.Equal(t, "https://codespaces.new/opengamedata/opengamedata-samples/tree/", cfg.Links.CodespacesBase)
	assert.Equal(t, "https://github.com/opengamedata/opengamedata-core/tree/", cfg.Links.GithubBase)
	assert.Empty(t, cfg.BigQueryGameMapping)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "неизвестное окружение",
			content: "env: staging\n",
		},
		{
			name:    "некорректный url индекса",
			content: "file_index:\n  url: \"not a url\"\n",
		},
		{
			name: "неполная настройка bigquery",
			content: `
bigquery_game_mapping:
  AQUALAB:
    project_id: "aqualab-57f88"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/definitely/not/here.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestMustLoad_UsesConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "env: dev\n"))

	cfg := MustLoad()
	assert.Equal(t, "dev", cfg.Env)
}

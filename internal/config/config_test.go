package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigFile = "../../configs/config.yaml"

func setRequiredEnv(t *testing.T) {
	t.Setenv("TG_TOKEN", "token")
	t.Setenv("AI_KEY", "ai-key")
	t.Setenv("SEARCH_API_KEY", "search-key")
}

func Test_Config_FileValues_ShouldBeLoaded(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := loadConfig(testConfigFile)
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, "https://jsearch.p.rapidapi.com", cfg.Search.BaseURL)
	assert.Equal(t, 10, cfg.Search.ResultsPerPage)
	assert.Equal(t, 15*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Search.CacheTTL)
	assert.Equal(t, 0, cfg.DB.SavedJobRetentionDays)
	assert.Equal(t, 8080, cfg.Metrics.Port)
}

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AI_MODEL", "super_duper_model")
	t.Setenv("AI_MAX_REQUESTS_PER_MINUTE", "88")
	t.Setenv("AI_MAX_REQUESTS_PER_DAY", "89")
	t.Setenv("SEARCH_BASE_URL", "https://search.example.com")
	t.Setenv("SEARCH_RESULTS_PER_PAGE", "20")
	t.Setenv("SEARCH_TIMEOUT", "3s")
	t.Setenv("SEARCH_MAX_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("DB_CONNECTION_STRING", "newConnectionString")
	t.Setenv("SAVED_JOB_RETENTION_DAYS", "128")
	t.Setenv("METRICS_PORT", "9090")

	cfg, err := loadConfig(testConfigFile)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "token", cfg.Bot.Token)
	assert.Equal(t, "ai-key", cfg.AI.Key)
	assert.Equal(t, "super_duper_model", cfg.AI.Model)
	assert.Equal(t, float32(88), cfg.AI.MaxRequestsPerMinute)
	assert.Equal(t, float32(89), cfg.AI.MaxRequestsPerDay)
	assert.Equal(t, "search-key", cfg.Search.APIKey)
	assert.Equal(t, "https://search.example.com", cfg.Search.BaseURL)
	assert.Equal(t, 20, cfg.Search.ResultsPerPage)
	assert.Equal(t, 3*time.Second, cfg.Search.Timeout)
	assert.Equal(t, float32(2.5), cfg.Search.MaxRequestsPerSecond)
	assert.Equal(t, "newConnectionString", cfg.DB.ConnectionString)
	assert.Equal(t, 128, cfg.DB.SavedJobRetentionDays)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func Test_Config_MissingSecrets_ShouldFailValidation(t *testing.T) {
	_, err := loadConfig(testConfigFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
	assert.Contains(t, err.Error(), "api_key")
}

func Test_Config_UnknownLogLevel_ShouldFailValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "LOUD")

	_, err := loadConfig(testConfigFile)
	assert.Error(t, err)
}

func Test_Config_NegativeRetention_ShouldFailValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SAVED_JOB_RETENTION_DAYS", "-1")

	_, err := loadConfig(testConfigFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saved_job_retention_days")
}

func Test_Config_MissingFile_ShouldFail(t *testing.T) {
	setRequiredEnv(t)

	_, err := loadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}

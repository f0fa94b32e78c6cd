package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type SearchConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	APIKey               string        `mapstructure:"api_key"`
	APIHost              string        `mapstructure:"api_host"`
	ResultsPerPage       int           `mapstructure:"results_per_page"`
	Timeout              time.Duration `mapstructure:"timeout"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
}

func (config SearchConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("search.base_url", "https://jsearch.p.rapidapi.com")
	v.SetDefault("search.results_per_page", 10)
	v.SetDefault("search.timeout", "15s")
	v.SetDefault("search.max_requests_per_second", 5)
	v.SetDefault("search.cache_ttl", "10m")
}

func (config SearchConfig) validate() error {

	var problems []string

	if config.APIKey == "" {
		problems = append(problems, "missing variable: api_key")
	}

	if config.BaseURL == "" {
		problems = append(problems, "missing variable: base_url")
	}

	if config.ResultsPerPage <= 0 || config.ResultsPerPage > 100 {
		problems = append(problems, "results_per_page must be between 1 and 100")
	}

	if config.Timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}

	if config.MaxRequestsPerSecond <= 0 {
		problems = append(problems, "max_requests_per_second must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return nil
}

func (config SearchConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"search.base_url":                "SEARCH_BASE_URL",
		"search.api_key":                 "SEARCH_API_KEY",
		"search.api_host":                "SEARCH_API_HOST",
		"search.results_per_page":        "SEARCH_RESULTS_PER_PAGE",
		"search.timeout":                 "SEARCH_TIMEOUT",
		"search.max_requests_per_second": "SEARCH_MAX_REQUESTS_PER_SECOND",
		"search.cache_ttl":               "SEARCH_CACHE_TTL",
	})
}

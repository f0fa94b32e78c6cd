package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	// SavedJobRetentionDays removes saved jobs this many days after they were saved. 0 keeps them forever.
	SavedJobRetentionDays int `mapstructure:"saved_job_retention_days"`
}

func (config DBConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("db.saved_job_retention_days", 0)
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	if config.SavedJobRetentionDays < 0 {
		return fmt.Errorf("saved_job_retention_days must not be negative")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"db.connection_string":        "DB_CONNECTION_STRING",
		"db.saved_job_retention_days": "SAVED_JOB_RETENTION_DAYS",
	})
}

package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// busyTimeout lets the bot's concurrent handlers wait for the sqlite write lock instead of failing.
const busyTimeout = "_pragma=busy_timeout(5000)"

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(withPragmas(connectionString)), &gorm.Config{
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DbContext{DB: db}, nil
}

func withPragmas(connectionString string) string {
	if strings.Contains(connectionString, "busy_timeout") {
		return connectionString
	}
	if strings.Contains(connectionString, "?") {
		return connectionString + "&" + busyTimeout
	}
	return connectionString + "?" + busyTimeout
}

func (c *DbContext) Migrate() error {
	for _, entity := range []any{&models.Profile{}, &models.SavedJob{}} {
		if err := c.DB.AutoMigrate(entity); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", entity, err)
		}
	}
	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

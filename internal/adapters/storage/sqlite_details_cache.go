package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/gittree/internal/domain"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ports"
)

const (
	// DefaultMaxEntries bounds the number of cached commits
	DefaultMaxEntries = 5000
	maxRetries        = 3
)

// SQLiteDetailsCache implements ports.DetailsCache using GORM
type SQLiteDetailsCache struct {
	db         *gorm.DB
	maxEntries int
	now        func() time.Time
}

// Verify interface compliance at compile time
var _ ports.DetailsCache = (*SQLiteDetailsCache)(nil)

// CacheOption configures a SQLiteDetailsCache
type CacheOption func(*SQLiteDetailsCache)

// WithMaxEntries sets the eviction bound; zero or less disables eviction
func WithMaxEntries(n int) CacheOption {
	return func(c *SQLiteDetailsCache) {
		c.maxEntries = n
	}
}

// WithDebug enables GORM query logging
func WithDebug(debug bool) CacheOption {
	return func(c *SQLiteDetailsCache) {
		if debug {
			c.db.Logger = newGormLogger(true)
		}
	}
}

// NewSQLiteDetailsCache opens (creating if needed) the cache database at dbPath
func NewSQLiteDetailsCache(dbPath string, opts ...CacheOption) (*SQLiteDetailsCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:  newGormLogger(false),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&CommitDetailsModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate commit_details schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	c := &SQLiteDetailsCache{
		db:         db,
		maxEntries: DefaultMaxEntries,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}

	logging.Logger.Debug("Details cache opened", "path", dbPath, "max_entries", c.maxEntries)
	return c, nil
}

// Close closes the database connection
func (c *SQLiteDetailsCache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements DetailsCache.Get
func (c *SQLiteDetailsCache) Get(ctx context.Context, hash string) (*domain.CommitDetails, error) {
	var model CommitDetailsModel

	err := withRetry(func() error {
		if err := c.db.WithContext(ctx).Where("hash = ?", hash).First(&model).Error; err != nil {
			return err
		}
		return c.db.WithContext(ctx).Model(&CommitDetailsModel{}).
			Where("hash = ?", hash).
			Update("last_accessed", c.now()).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", hash, domain.ErrCommitNotFound)
		}
		return nil, fmt.Errorf("failed to read cached details: %w", err)
	}

	return detailsModelToDomain(model), nil
}

// Put implements DetailsCache.Put
func (c *SQLiteDetailsCache) Put(ctx context.Context, details *domain.CommitDetails) error {
	model := domainToDetailsModel(details)
	model.CreatedAt = c.now()
	model.LastAccessed = model.CreatedAt

	err := withRetry(func() error {
		return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return err
			}
			return c.evict(tx)
		})
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to cache details for %s: %w", details.Hash, err)
	}
	return nil
}

// evict removes the least recently accessed rows beyond maxEntries
func (c *SQLiteDetailsCache) evict(tx *gorm.DB) error {
	if c.maxEntries <= 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&CommitDetailsModel{}).Count(&count).Error; err != nil {
		return err
	}
	excess := int(count) - c.maxEntries
	if excess <= 0 {
		return nil
	}

	var stale []string
	if err := tx.Model(&CommitDetailsModel{}).
		Order("last_accessed ASC").
		Limit(excess).
		Pluck("hash", &stale).Error; err != nil {
		return err
	}

	logging.Logger.Debug("Evicting cached details", "count", len(stale))
	return tx.Where("hash IN ?", stale).Delete(&CommitDetailsModel{}).Error
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

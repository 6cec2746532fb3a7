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
	"gorm.io/gorm/logger"

	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/ports"
)

// SQLiteTrackedStore keeps tracked-pending paths for every repository in one
// SQLite database, keyed by working-tree root
type SQLiteTrackedStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.TrackedStore = (*SQLiteTrackedStore)(nil)

// gormLogger wraps the gitdash logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
		return
	}
	logging.Logger.Debug("gorm query",
		"duration", elapsed,
		"sql", sql,
		"rows", rows,
	)
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.DebugEnv) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteTrackedStore opens (and migrates) the database at dbPath
func NewSQLiteTrackedStore(dbPath string) (*SQLiteTrackedStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:  newGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the server and CLI commands share the database
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&TrackedPathModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tracked_paths schema: %w", err)
	}

	logging.Logger.Debug("Tracked-pending database opened", "path", dbPath)
	return &SQLiteTrackedStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteTrackedStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Read returns the sorted tracked-pending paths of repo
func (s *SQLiteTrackedStore) Read(ctx context.Context, repo ports.RepoLocation) ([]string, error) {
	var paths []string
	err := withRetry(func() error {
		paths = nil
		return s.db.WithContext(ctx).Model(&TrackedPathModel{}).
			Where("repo_root = ?", repo.Root).
			Order("path").
			Pluck("path", &paths).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to read tracked paths: %w", err)
	}
	return normalize(paths), nil
}

// Add unions paths into the record of repo
func (s *SQLiteTrackedStore) Add(ctx context.Context, repo ports.RepoLocation, paths []string) ([]string, error) {
	paths = normalize(paths)
	if len(paths) > 0 {
		rows := make([]TrackedPathModel, 0, len(paths))
		for _, p := range paths {
			rows = append(rows, TrackedPathModel{Path: p, RepoRoot: repo.Root})
		}

		err := withRetry(func() error {
			return s.db.WithContext(ctx).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&rows).Error
		}, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to add tracked paths: %w", err)
		}
	}
	return s.Read(ctx, repo)
}

// Remove drops paths from the record of repo
func (s *SQLiteTrackedStore) Remove(ctx context.Context, repo ports.RepoLocation, paths []string) ([]string, error) {
	if len(paths) > 0 {
		err := withRetry(func() error {
			return s.db.WithContext(ctx).
				Where("repo_root = ? AND path IN ?", repo.Root, paths).
				Delete(&TrackedPathModel{}).Error
		}, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to remove tracked paths: %w", err)
		}
	}
	return s.Read(ctx, repo)
}

// Prune drops every path of repo that is not in untracked
func (s *SQLiteTrackedStore) Prune(ctx context.Context, repo ports.RepoLocation, untracked []string) ([]string, error) {
	var remaining []string
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var current []string
			if err := tx.Model(&TrackedPathModel{}).
				Where("repo_root = ?", repo.Root).
				Pluck("path", &current).Error; err != nil {
				return err
			}

			remaining = intersect(current, untracked)
			stale := subtract(current, remaining)
			if len(stale) == 0 {
				return nil
			}

			return tx.Where("repo_root = ? AND path IN ?", repo.Root, stale).
				Delete(&TrackedPathModel{}).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to prune tracked paths: %w", err)
	}
	return remaining, nil
}

// withRetry retries fn while SQLite reports the database as busy or locked
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

package remote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ember-forge/warband/internal/models"
)

// LocalStore implements RecordStore on an embedded SQLite database
// with the pure-Go driver, so sync features work without a hosted
// backend or network access.
type LocalStore struct {
	db   *gorm.DB
	path string
}

// LocalConfig holds local store configuration options.
type LocalConfig struct {
	Path  string
	Debug bool
}

// DefaultLocalConfig returns sensible defaults.
func DefaultLocalConfig(path string) LocalConfig {
	return LocalConfig{Path: path}
}

// NewLocalStore opens the database and runs migrations.
func NewLocalStore(cfg LocalConfig) (*LocalStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// DELETE journal mode: WAL has visibility issues with the pure-Go
	// SQLite driver.
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	store := &LocalStore{db: db, path: cfg.Path}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *LocalStore) migrate() error {
	return s.db.AutoMigrate(
		&models.CatalogRecord{},
		&models.RosterRecord{},
	)
}

// SeedCatalog replaces the catalog table contents with the given
// entries. Entries without an id get one assigned.
func (s *LocalStore) SeedCatalog(ctx context.Context, entries []models.CatalogEntry) error {
	records := make([]models.CatalogRecord, 0, len(entries))
	for _, entry := range entries {
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		records = append(records, models.CatalogRecord{
			ID:       id,
			Name:     entry.Name,
			Faction:  entry.Faction,
			Type:     entry.Type,
			Affinity: entry.Affinity,
			Rarity:   entry.Rarity,
			ImageURL: entry.ImageURL,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CatalogRecord{}).Error; err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 200).Error; err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
		return nil
	})
}

// CatalogCount reports how many catalog rows exist, so callers can
// seed an empty database on first open.
func (s *LocalStore) CatalogCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.CatalogRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return count, nil
}

// SearchCatalog matches names case-insensitively by substring.
func (s *LocalStore) SearchCatalog(ctx context.Context, query string) ([]models.CatalogRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var records []models.CatalogRecord
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Limit(SearchLimit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return records, nil
}

// GetCatalogByIDs batch-loads catalog records by id.
func (s *LocalStore) GetCatalogByIDs(ctx context.Context, ids []string) ([]models.CatalogRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var records []models.CatalogRecord
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load catalog records: %w", err)
	}
	return records, nil
}

// ListRoster returns all roster rows, most recently updated first.
func (s *LocalStore) ListRoster(ctx context.Context) ([]models.RosterRecord, error) {
	var records []models.RosterRecord
	if err := s.db.WithContext(ctx).Order("updated_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return records, nil
}

// UpsertRoster inserts or overwrites the row sharing the record's
// CharacterID.
func (s *LocalStore) UpsertRoster(ctx context.Context, record models.RosterRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if record.Timestamp.IsZero() {
		record.Timestamp = now
	}
	record.UpdatedAt = now

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "character_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"level", "ascension_level", "soul_level", "rarity", "timestamp", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("upsert roster: %w", err)
	}
	return nil
}

// UpdateRoster patches the row with the given CharacterID.
func (s *LocalStore) UpdateRoster(ctx context.Context, characterID string, changes RosterChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if changes.Level != nil {
		updates["level"] = *changes.Level
	}
	if changes.AscensionLevel != nil {
		updates["ascension_level"] = *changes.AscensionLevel
	}
	if changes.SoulLevel != nil {
		updates["soul_level"] = *changes.SoulLevel
	}
	if changes.Rarity != nil {
		updates["rarity"] = *changes.Rarity
	}

	result := s.db.WithContext(ctx).
		Model(&models.RosterRecord{}).
		Where("character_id = ?", characterID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update roster: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoster removes the row with the given CharacterID.
func (s *LocalStore) DeleteRoster(ctx context.Context, characterID string) error {
	result := s.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Delete(&models.RosterRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete roster: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database connection.
func (s *LocalStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *LocalStore) Path() string {
	return s.path
}

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Record is a single namespaced key with its JSON-encoded value.
type Record struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName pins the storage table.
func (Record) TableName() string {
	return "kv_records"
}

type sqliteStore struct {
	db *gorm.DB
}

// NewSQLite opens (and if needed creates) the sqlite-backed store at path.
func NewSQLite(path string) (Store, error) {
	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", path, err)
	}

	if err := conn.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating store schema: %w", err)
	}

	return &sqliteStore{db: conn}, nil
}

// NewSQLiteFromConn wraps an already-open GORM connection. Used by tests
// that run against an in-memory database.
func NewSQLiteFromConn(conn *gorm.DB) (Store, error) {
	if conn == nil {
		return nil, fmt.Errorf("nil connection")
	}
	if err := conn.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating store schema: %w", err)
	}
	return &sqliteStore{db: conn}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	// Malformed payloads read as absent rather than failing the caller.
	if err := json.Unmarshal(rec.Value, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	rec := Record{Key: key, Value: payload, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&Record{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("listing keys under %s: %w", prefix, err)
	}
	return keys, nil
}

func (s *sqliteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

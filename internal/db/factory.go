package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

// DefaultSQLiteDBPath путь к файлу SQLite по умолчанию.
const DefaultSQLiteDBPath = "./bulkmeta.sqlite"

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  *string
	SqliteDBPath *string
}

// NewConnectionFactory открывает соединение нужного типа и применяет схему.
//
// Возвращает:
//   - any: *pgxpool.Pool, *gorm.DB или *MemoryStorage в зависимости от StorageType
//   - error: ошибка подключения или миграции
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil || *config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		pool, err := NewPostgresConnection(ctx, *config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		// пока не будем ничего усложнять, а сделаем миграцию прямо здесь
		migrateErr := simpleMigrateSchema(ctx, pool)
		if migrateErr != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", migrateErr)
		}
		return pool, nil
	case StorageTypeSQLite:
		path := DefaultSQLiteDBPath
		if config.SqliteDBPath != nil && *config.SqliteDBPath != "" {
			path = *config.SqliteDBPath
		}
		return NewSQLite(path)
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS posts (
    id BIGSERIAL PRIMARY KEY,
    created_at timestamp with time zone DEFAULT now(),
    updated_at timestamp with time zone DEFAULT now(),
    title VARCHAR(512) NOT NULL DEFAULT '',
    type VARCHAR(20) NOT NULL DEFAULT 'post',
    status VARCHAR(20) NOT NULL DEFAULT 'draft',
    author_id BIGINT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_posts_type ON posts (type);
CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts (author_id);
CREATE TABLE IF NOT EXISTS post_meta (
    id BIGSERIAL PRIMARY KEY,
    created_at timestamp with time zone DEFAULT now(),
    updated_at timestamp with time zone DEFAULT now(),
    post_id BIGINT NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
    meta_key VARCHAR(255) NOT NULL,
    meta_value TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_post_meta_post_key ON post_meta (post_id, meta_key);
`

func simpleMigrateSchema(ctx context.Context, conn *pgxpool.Pool) error {
	_, err := conn.Exec(ctx, schemaSQL)
	return err //nolint:wrapcheck
}

// CloseConnection закрывает соединение, открытое NewConnectionFactory.
func CloseConnection(conn any) error {
	switch c := conn.(type) {
	case *pgxpool.Pool:
		c.Close()
	case *gorm.DB:
		sqlDB, err := c.DB()
		if err != nil {
			return fmt.Errorf("get sql db: %w", err)
		}
		if err = sqlDB.Close(); err != nil {
			return fmt.Errorf("close sqlite: %w", err)
		}
	}
	return nil
}

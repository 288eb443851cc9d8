package pg

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PostRepo репозиторий записей в PostgreSQL.
type PostRepo struct {
	pool   *pgxpool.Pool
	logger *logrus.Entry
}

// NewPostRepo создает новый экземпляр репозитория.
//
// Параметры:
//   - pool: пул подключений
//   - logger: логгер
//
// Возвращает:
//   - *PostRepo: инициализированный репозиторий
func NewPostRepo(pool *pgxpool.Pool, logger *logrus.Logger) *PostRepo {
	return &PostRepo{
		pool:   pool,
		logger: logger.WithField("module", "repository/pg/post"),
	}
}

const (
	insertPostSQL = `INSERT INTO posts (title, type, status, author_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	insertPostWithIDSQL = `INSERT INTO posts (id, title, type, status, author_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`
	syncPostSeqSQL = `SELECT setval(pg_get_serial_sequence('posts', 'id'), GREATEST((SELECT MAX(id) FROM posts), 1))`
	selectPostSQL  = `SELECT id, created_at, updated_at, title, type, status, author_id FROM posts WHERE id = $1`
	upsertMetaSQL  = `INSERT INTO post_meta (post_id, meta_key, meta_value)
VALUES ($1, $2, $3)
ON CONFLICT (post_id, meta_key) DO UPDATE
SET meta_value = EXCLUDED.meta_value, updated_at = now()
WHERE post_meta.meta_value IS DISTINCT FROM EXCLUDED.meta_value`
	selectMetaSQL = `SELECT meta_value FROM post_meta WHERE post_id = $1 AND meta_key = $2`
	postExistsSQL = `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`
)

// Create сохраняет запись. После вставки с явным ID последовательность posts.id подтягивается к MAX(id).
func (p *PostRepo) Create(ctx context.Context, post *models.Post) error {
	if post.Type == "" {
		post.Type = models.DefaultPostType
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}

	var row pgx.Row
	if post.ID == 0 {
		row = p.pool.QueryRow(ctx, insertPostSQL, post.Title, post.Type, post.Status, post.AuthorID)
	} else {
		row = p.pool.QueryRow(ctx, insertPostWithIDSQL, post.ID, post.Title, post.Type, post.Status, post.AuthorID)
	}
	if err := row.Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		p.logger.WithError(err).Errorf("failed to create post %+v", *post)
		return fmt.Errorf("failed to create post: %w", convertErrorType(err))
	}

	if _, err := p.pool.Exec(ctx, syncPostSeqSQL); err != nil {
		p.logger.WithError(err).Warn("failed to sync posts id sequence")
	}
	return nil
}

func (p *PostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := p.pool.QueryRow(ctx, selectPostSQL, id).Scan(
		&post.ID, &post.CreatedAt, &post.UpdatedAt, &post.Title, &post.Type, &post.Status, &post.AuthorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id %d: %w", id, convertErrorType(err))
	}
	return &post, nil
}

// SetMeta upsert значения. Если значение не изменилось, строка не трогается.
func (p *PostRepo) SetMeta(ctx context.Context, postID uint, key, value string) error {
	var exists bool
	if err := p.pool.QueryRow(ctx, postExistsSQL, postID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check post %d: %w", postID, convertErrorType(err))
	}
	if !exists {
		return fmt.Errorf("failed to set meta `%s` for post %d: %w", key, postID, convertErrorType(pgx.ErrNoRows))
	}

	if _, err := p.pool.Exec(ctx, upsertMetaSQL, postID, key, value); err != nil {
		p.logger.WithError(err).Errorf("failed to set meta `%s` for post %d", key, postID)
		return fmt.Errorf("failed to set meta `%s` for post %d: %w", key, postID, convertErrorType(err))
	}
	return nil
}

func (p *PostRepo) GetMeta(ctx context.Context, postID uint, key string) (string, error) {
	var value string
	if err := p.pool.QueryRow(ctx, selectMetaSQL, postID, key).Scan(&value); err != nil {
		return "", fmt.Errorf("failed to get meta `%s` for post %d: %w", key, postID, convertErrorType(err))
	}
	return value, nil
}

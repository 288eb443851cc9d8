package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/db"
	"github.com/fsdevblog/bulkmeta/internal/db/memory"
	"github.com/fsdevblog/bulkmeta/internal/models"
)

const (
	postKeyPrefix = "post:"
	metaKeyPrefix = "meta:"
)

func postKey(id uint) string {
	return fmt.Sprintf("%s%d", postKeyPrefix, id)
}

func metaKey(postID uint, key string) string {
	return fmt.Sprintf("%s%d:%s", metaKeyPrefix, postID, key)
}

// PostRepo представляет собой репозиторий записей и их метаданных в памяти.
type PostRepo struct {
	s      *db.MemoryStorage
	mu     sync.Mutex
	lastID uint
}

// NewPostRepo создает новый экземпляр репозитория записей.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *PostRepo: инициализированный репозиторий
func NewPostRepo(store *db.MemoryStorage) *PostRepo {
	return &PostRepo{
		s: store,
	}
}

// Create сохраняет новую запись. Если ID не задан, он назначается автоматически.
//
// Параметры:
//   - ctx: контекст выполнения
//   - post: запись для сохранения, поля ID и даты заполняются
//
// Возвращает:
//   - error: ошибка создания (преобразованная через convertErrorType)
func (p *PostRepo) Create(ctx context.Context, post *models.Post) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if post.ID == 0 {
		post.ID = p.lastID + 1
	}
	now := time.Now()
	post.CreatedAt, post.UpdatedAt = now, now
	if post.Type == "" {
		post.Type = models.DefaultPostType
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}

	if err := memory.Set[models.Post](ctx, postKey(post.ID), post, p.s.MStorage); err != nil {
		return fmt.Errorf("failed to create post %d: %w", post.ID, convertErrorType(err))
	}
	p.lastID = max(p.lastID, post.ID)
	return nil
}

// GetByID получает запись по идентификатору.
//
// Параметры:
//   - ctx: контекст выполнения
//   - id: идентификатор записи
//
// Возвращает:
//   - *models.Post: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (p *PostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := memory.Get[models.Post](ctx, postKey(id), p.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, convertErrorType(err))
	}
	return post, nil
}

// SetMeta записывает значение поля метаданных. Повторная запись того же значения успешна и ничего не меняет.
func (p *PostRepo) SetMeta(ctx context.Context, postID uint, key, value string) error {
	if !p.s.IsExist(postKey(postID)) {
		return fmt.Errorf("failed to set meta `%s` for post %d: %w", key, postID, convertErrorType(memory.ErrNotFound))
	}

	mKey := metaKey(postID, key)
	now := time.Now()
	meta := models.PostMeta{PostID: postID, MetaKey: key, MetaValue: value, CreatedAt: now, UpdatedAt: now}

	existing, getErr := memory.Get[models.PostMeta](ctx, mKey, p.s.MStorage)
	switch {
	case getErr == nil:
		if existing.MetaValue == value {
			return nil
		}
		meta.CreatedAt = existing.CreatedAt
	case !isNotFound(getErr):
		return fmt.Errorf("failed to read meta `%s` for post %d: %w", key, postID, convertErrorType(getErr))
	}

	if err := memory.Set[models.PostMeta](ctx, mKey, &meta, p.s.MStorage, memory.WithOverwrite()); err != nil {
		return fmt.Errorf("failed to set meta `%s` for post %d: %w", key, postID, convertErrorType(err))
	}
	return nil
}

// GetMeta возвращает значение поля метаданных.
func (p *PostRepo) GetMeta(ctx context.Context, postID uint, key string) (string, error) {
	meta, err := memory.Get[models.PostMeta](ctx, metaKey(postID, key), p.s.MStorage)
	if err != nil {
		return "", fmt.Errorf("failed to get meta `%s` for post %d: %w", key, postID, convertErrorType(err))
	}
	return meta.MetaValue, nil
}

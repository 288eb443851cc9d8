package services

import (
	"context"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// PostReader находит запись по идентификатору. Отсутствие записи - repositories.ErrNotFound.
type PostReader interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
}

// MetaWriter записывает поле метаданных записи. Запись обязана быть идемпотентной.
type MetaWriter interface {
	SetMeta(ctx context.Context, postID uint, key, value string) error
}

// PostRepository описывает репозиторий записей.
type PostRepository interface {
	PostReader
	MetaWriter
	// Create сохраняет запись. Нулевой ID назначается хранилищем.
	Create(ctx context.Context, post *models.Post) error
	// GetMeta возвращает значение поля метаданных.
	GetMeta(ctx context.Context, postID uint, key string) (string, error)
}

// PermissionChecker проверяет право пользователя на редактирование конкретной записи.
type PermissionChecker interface {
	CanEdit(actor Actor, post *models.Post) bool
}

// TransientStore хранилище короткоживущих значений.
type TransientStore interface {
	SetTransient(ctx context.Context, key string, value []string, ttl time.Duration) error
	// PullTransient возвращает значение и удаляет его.
	PullTransient(ctx context.Context, key string) ([]string, error)
}

// OutcomeRecorder принимает исход обработки каждой записи (метрики).
type OutcomeRecorder interface {
	RecordOutcome(action string, outcome string)
}

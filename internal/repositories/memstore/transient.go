package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/db"
	"github.com/fsdevblog/bulkmeta/internal/db/memory"
)

const transientKeyPrefix = "transient:"

type transient struct {
	Value     []string  `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TransientRepo короткоживущие значения с истечением срока (аналог transient API).
type TransientRepo struct {
	s   *db.MemoryStorage
	now func() time.Time
}

func NewTransientRepo(store *db.MemoryStorage) *TransientRepo {
	return &TransientRepo{s: store, now: time.Now}
}

// WithClock подменяет источник времени. Используется в тестах.
func (t *TransientRepo) WithClock(now func() time.Time) *TransientRepo {
	t.now = now
	return t
}

// SetTransient сохраняет значение на ttl, перезаписывая предыдущее.
// Попутно удаляет все просроченные значения.
func (t *TransientRepo) SetTransient(ctx context.Context, key string, value []string, ttl time.Duration) error {
	now := t.now()
	if _, err := memory.DeleteFunc(ctx, transientKeyPrefix, t.s.MStorage, func(v transient) bool {
		return !now.Before(v.ExpiresAt)
	}); err != nil {
		return fmt.Errorf("failed to sweep transients: %w", convertErrorType(err))
	}

	val := transient{Value: value, ExpiresAt: now.Add(ttl)}
	if err := memory.Set[transient](ctx, transientKeyPrefix+key, &val, t.s.MStorage, memory.WithOverwrite()); err != nil {
		return fmt.Errorf("failed to set transient `%s`: %w", key, convertErrorType(err))
	}
	return nil
}

// PullTransient возвращает значение и удаляет его. Просроченное значение считается отсутствующим.
//
// Параметры:
//   - ctx: контекст выполнения
//   - key: ключ значения
//
// Возвращает:
//   - []string: сохраненное значение
//   - error: repositories.ErrNotFound если значения нет или оно просрочено
func (t *TransientRepo) PullTransient(ctx context.Context, key string) ([]string, error) {
	fullKey := transientKeyPrefix + key
	val, err := memory.Get[transient](ctx, fullKey, t.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get transient `%s`: %w", key, convertErrorType(err))
	}
	if delErr := memory.Delete(ctx, fullKey, t.s.MStorage); delErr != nil {
		return nil, fmt.Errorf("failed to delete transient `%s`: %w", key, convertErrorType(delErr))
	}
	if !t.now().Before(val.ExpiresAt) {
		return nil, fmt.Errorf("transient `%s` expired: %w", key, convertErrorType(memory.ErrNotFound))
	}
	return val.Value, nil
}

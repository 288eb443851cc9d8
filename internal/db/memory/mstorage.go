package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное хранилище ключ/значение в памяти. Значения хранятся в виде JSON.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

// NewMemStorage создает пустое хранилище.
func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

// Len возвращает количество записей в хранилище.
func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

// IsExist проверяет наличие ключа.
func (m *MStorage) IsExist(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	_, ok := m.data[key]
	return ok
}

// SetOptions настройки операции Set.
type SetOptions struct {
	Overwrite bool // Разрешает перезапись существующего ключа
}

// WithOverwrite разрешает перезапись существующего значения.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.Overwrite = true
	}
}

// Get возвращает значение по ключу.
//
// Параметры:
//   - ctx: контекст выполнения
//   - key: ключ записи
//   - m: хранилище
//
// Возвращает:
//   - *T: найденное значение
//   - error: ErrNotFound если ключа нет, либо ошибка десериализации
func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set Сохраняет новые пары ключ/значение. Ключ обязан быть уникальным, иначе вернется ошибка ErrDuplicateKey.
// Поведение меняется опцией WithOverwrite.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, exists := m.data[key]; exists && !options.Overwrite {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	return nil
}

// Delete удаляет запись. Отсутствие ключа ошибкой не считается.
func Delete(ctx context.Context, key string, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	delete(m.data, key)
	return nil
}

// DeleteFunc удаляет записи с ключами на prefix, для которых fn вернула true.
// Возвращает число удаленных записей.
func DeleteFunc[T any](ctx context.Context, prefix string, m *MStorage, fn func(T) bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	var removed int
	for key, bytes := range m.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return removed, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn(val) {
			delete(m.data, key)
			removed++
		}
	}
	return removed, nil
}

// GetAll возвращает все значения, ключи которых начинаются с prefix.
func GetAll[T any](ctx context.Context, prefix string, m *MStorage) ([]T, error) {
	return FilterAll[T](ctx, prefix, m, func(T) bool { return true })
}

// FilterAll возвращает значения с ключами на prefix, для которых fn вернула true.
//
// Параметры:
//   - ctx: контекст выполнения
//   - prefix: префикс ключа
//   - m: хранилище
//   - fn: функция фильтрации
//
// Возвращает:
//   - []T: отфильтрованные значения (порядок не гарантируется)
//   - error: ошибка контекста или десериализации
func FilterAll[T any](ctx context.Context, prefix string, m *MStorage, fn func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0)
	for key, bytes := range m.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}

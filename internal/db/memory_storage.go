package db

import (
	"context"

	"github.com/fsdevblog/bulkmeta/internal/db/memory"
)

// MemoryStorage хранилище в памяти процесса.
type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		MStorage: memory.NewMemStorage(),
	}
}

// Ping хранилище в памяти доступно всегда, пока жив контекст.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}

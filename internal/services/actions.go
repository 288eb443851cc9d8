package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// BulkAction пакетное действие над записями.
type BulkAction interface {
	Run(ctx context.Context, batch BatchRequest) (BatchResult, error)
}

// BulkActionInfo описание действия для выпадающего списка.
type BulkActionInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type registeredAction struct {
	info   BulkActionInfo
	action BulkAction
}

// BulkActions единая точка регистрации пакетных действий для разрешенных типов записей.
type BulkActions struct {
	postTypes []string
	mu        sync.RWMutex
	actions   []registeredAction
}

// NewBulkActions создает реестр для перечисленных типов записей.
func NewBulkActions(postTypes []string) *BulkActions {
	return &BulkActions{postTypes: slices.Clone(postTypes)}
}

// Register добавляет действие. Повторная регистрация имени - ErrActionRegistered.
func (b *BulkActions) Register(name, label string, action BulkAction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ra := range b.actions {
		if ra.info.Name == name {
			return fmt.Errorf("register `%s`: %w", name, ErrActionRegistered)
		}
	}
	b.actions = append(b.actions, registeredAction{
		info:   BulkActionInfo{Name: name, Label: label},
		action: action,
	})
	return nil
}

// Supports проверяет, что для типа записей доступны пакетные действия.
func (b *BulkActions) Supports(postType string) bool {
	return slices.Contains(b.postTypes, postType)
}

// List действия, доступные для типа записей, в порядке регистрации.
func (b *BulkActions) List(postType string) []BulkActionInfo {
	if !b.Supports(postType) {
		return []BulkActionInfo{}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	infos := make([]BulkActionInfo, 0, len(b.actions))
	for _, ra := range b.actions {
		infos = append(infos, ra.info)
	}
	return infos
}

// Get возвращает действие по имени для типа записей.
func (b *BulkActions) Get(postType, name string) (BulkAction, bool) {
	if !b.Supports(postType) {
		return nil, false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ra := range b.actions {
		if ra.info.Name == name {
			return ra.action, true
		}
	}
	return nil, false
}

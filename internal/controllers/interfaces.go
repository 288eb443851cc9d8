package controllers

import (
	"context"

	"github.com/fsdevblog/bulkmeta/internal/services"
)

//go:generate mockgen -source=interfaces.go -destination=mocksctrl/mock.go -package=mocksctrl

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// BulkActionRegistry реестр пакетных действий по типам записей.
type BulkActionRegistry interface {
	List(postType string) []services.BulkActionInfo
	Get(postType, name string) (services.BulkAction, bool)
}

// NoticeKeeper сводки ошибок пакетных действий.
type NoticeKeeper interface {
	Summarize(errs []services.ItemError) []string
	Store(ctx context.Context, actorID uint, errs []services.ItemError) error
	Render(ctx context.Context, actorID uint, q services.NoticeQuery) ([]services.Notice, error)
}

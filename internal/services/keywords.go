package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/fsdevblog/bulkmeta/internal/repositories"
	"github.com/sirupsen/logrus"
)

const (
	// ActionSetFocusKeyword имя пакетного действия "заголовок как фокусное ключевое слово".
	ActionSetFocusKeyword = "set_focus_keyword"
	// DefaultFocusKeywordMetaKey поле метаданных SEO плагина.
	DefaultFocusKeywordMetaKey = "rank_math_focus_keyword"

	outcomeUpdated = "updated"
)

// ValueFunc вычисляет значение поля метаданных из записи. Пустая строка означает невалидное значение.
type ValueFunc func(post *models.Post) string

// BulkMetaAssigner пакетно записывает в поле метаданных значение, вычисленное из каждой записи.
// Записи обрабатываются независимо: ошибка по одной записи не влияет на остальные и не откатывает их.
type BulkMetaAssigner struct {
	action   string
	metaKey  string
	posts    PostReader
	meta     MetaWriter
	access   PermissionChecker
	value    ValueFunc
	recorder OutcomeRecorder
	logger   *logrus.Entry
}

// AssignerOption настройка BulkMetaAssigner.
type AssignerOption func(*BulkMetaAssigner)

// WithOutcomeRecorder подключает учет исходов (метрики).
func WithOutcomeRecorder(r OutcomeRecorder) AssignerOption {
	return func(a *BulkMetaAssigner) {
		a.recorder = r
	}
}

// WithLogger задает логгер. По умолчанию используется стандартный логгер logrus.
func WithLogger(l *logrus.Logger) AssignerOption {
	return func(a *BulkMetaAssigner) {
		a.logger = l.WithField("module", "services/bulk_meta")
	}
}

// NewBulkMetaAssigner создает пакетное действие над полем метаданных.
//
// Параметры:
//   - action: имя действия (для логов и метрик)
//   - metaKey: поле метаданных
//   - posts: источник записей
//   - meta: запись метаданных
//   - access: проверка прав на запись
//   - value: вычисление значения поля
//   - opts: дополнительные настройки
//
// Возвращает:
//   - *BulkMetaAssigner: готовое действие
func NewBulkMetaAssigner(
	action, metaKey string,
	posts PostReader,
	meta MetaWriter,
	access PermissionChecker,
	value ValueFunc,
	opts ...AssignerOption,
) *BulkMetaAssigner {
	a := &BulkMetaAssigner{
		action:  action,
		metaKey: metaKey,
		posts:   posts,
		meta:    meta,
		access:  access,
		value:   value,
		logger:  logrus.StandardLogger().WithField("module", "services/bulk_meta"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFocusKeywordAssigner действие "заголовок записи как фокусное ключевое слово".
func NewFocusKeywordAssigner(
	metaKey string,
	posts PostReader,
	meta MetaWriter,
	access PermissionChecker,
	sanitize TitleSanitizer,
	opts ...AssignerOption,
) *BulkMetaAssigner {
	if metaKey == "" {
		metaKey = DefaultFocusKeywordMetaKey
	}
	return NewBulkMetaAssigner(ActionSetFocusKeyword, metaKey, posts, meta, access, func(post *models.Post) string {
		return sanitize(post.Title)
	}, opts...)
}

// MetaKey поле метаданных, в которое пишет действие.
func (a *BulkMetaAssigner) MetaKey() string {
	return a.metaKey
}

// Run выполняет действие над пакетом.
//
// Параметры:
//   - ctx: контекст выполнения
//   - batch: сырые идентификаторы и пользователь
//
// Возвращает:
//   - BatchResult: число обновленных записей и полный список ошибок в порядке пакета
//   - error: ErrNoItemsSubmitted для пустого пакета либо ошибка контекста
func (a *BulkMetaAssigner) Run(ctx context.Context, batch BatchRequest) (BatchResult, error) {
	if len(batch.Tokens) == 0 {
		return BatchResult{}, ErrNoItemsSubmitted
	}

	ids := ParseItemIDs(batch.Tokens)
	result := BatchResult{Errors: make([]ItemError, 0)}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return BatchResult{}, fmt.Errorf("%s interrupted: %w", a.action, err)
		}

		if itemErr := a.apply(ctx, batch.Actor, id); itemErr != nil {
			result.Errors = append(result.Errors, *itemErr)
			a.record(string(itemErr.Kind))
			continue
		}
		result.Updated++
		a.record(outcomeUpdated)
	}

	a.logger.WithFields(logrus.Fields{
		"action":    a.action,
		"actor":     batch.Actor.ID,
		"submitted": len(batch.Tokens),
		"attempted": len(ids),
		"updated":   result.Updated,
		"errors":    len(result.Errors),
	}).Info("bulk action processed")

	return result, nil
}

// apply обрабатывает одну запись. nil означает успешное обновление.
func (a *BulkMetaAssigner) apply(ctx context.Context, actor Actor, id ItemID) *ItemError {
	post, err := a.posts.GetByID(ctx, uint(id))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			a.logger.WithError(err).Errorf("failed to look up post %d", id)
		}
		return &ItemError{ItemID: id, Kind: ErrorKindNotFound, Detail: "item not found"}
	}

	if !a.access.CanEdit(actor, post) {
		return &ItemError{ItemID: id, Kind: ErrorKindPermissionDenied, Detail: titleOrID(post, id)}
	}

	value := a.value(post)
	if value == "" {
		return &ItemError{ItemID: id, Kind: ErrorKindValidationFailed, Detail: titleOrID(post, id)}
	}

	if err = a.meta.SetMeta(ctx, uint(id), a.metaKey, value); err != nil {
		a.logger.WithError(err).Errorf("failed to write `%s` for post %d", a.metaKey, id)
		return &ItemError{ItemID: id, Kind: ErrorKindWriteFailed, Detail: titleOrID(post, id)}
	}
	return nil
}

func (a *BulkMetaAssigner) record(outcome string) {
	if a.recorder != nil {
		a.recorder.RecordOutcome(a.action, outcome)
	}
}

func titleOrID(post *models.Post, id ItemID) string {
	if strings.TrimSpace(post.Title) != "" {
		return post.Title
	}
	return fmt.Sprintf("Post ID %d", id)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/repositories"
	"github.com/sirupsen/logrus"
)

const (
	DefaultNoticeTTL   = 30 * time.Second
	DefaultNoticeLimit = 5
)

// Коды ошибок уровня пакета, передаваемые через редирект.
const (
	ErrorCodeInsufficientPermissions = "insufficient_permissions"
	ErrorCodeNoPosts                 = "no_posts"
)

// NoticeLevel уровень уведомления.
type NoticeLevel string

const (
	NoticeLevelSuccess NoticeLevel = "success"
	NoticeLevelError   NoticeLevel = "error"
	NoticeLevelWarning NoticeLevel = "warning"
)

// Notice уведомление админки.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Items   []string    `json:"items,omitempty"`
}

// NoticeQuery состояние, пришедшее в параметрах редиректа.
type NoticeQuery struct {
	Updated   *int
	ErrorCode string
	HasErrors bool
}

// NoticeService готовит уведомления по итогам пакетного действия.
// Подробности ошибок живут в транзиенте пользователя ttl и удаляются после показа.
type NoticeService struct {
	store  TransientStore
	ttl    time.Duration
	limit  int
	logger *logrus.Entry
}

func NewNoticeService(store TransientStore, ttl time.Duration, limit int, logger *logrus.Logger) *NoticeService {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	if limit <= 0 {
		limit = DefaultNoticeLimit
	}
	return &NoticeService{
		store:  store,
		ttl:    ttl,
		limit:  limit,
		logger: logger.WithField("module", "services/notices"),
	}
}

// Summarize первые limit сообщений и хвост "... and N more errors".
func (n *NoticeService) Summarize(errs []ItemError) []string {
	shown := min(len(errs), n.limit)
	summary := make([]string, 0, shown+1)
	for _, e := range errs[:shown] {
		summary = append(summary, e.Message())
	}
	if rest := len(errs) - shown; rest > 0 {
		summary = append(summary, fmt.Sprintf("... and %d more errors", rest))
	}
	return summary
}

// Store сохраняет сводку ошибок для пользователя. Пустой список не сохраняется.
func (n *NoticeService) Store(ctx context.Context, actorID uint, errs []ItemError) error {
	if len(errs) == 0 {
		return nil
	}
	if err := n.store.SetTransient(ctx, noticeKey(actorID), n.Summarize(errs), n.ttl); err != nil {
		return fmt.Errorf("store notices for actor %d: %w", actorID, err)
	}
	return nil
}

// Render собирает уведомления из параметров редиректа и сохраненной сводки.
//
// Параметры:
//   - ctx: контекст выполнения
//   - actorID: пользователь
//   - q: параметры редиректа
//
// Возвращает:
//   - []Notice: уведомления в порядке success, error, warning
//   - error: ошибка чтения хранилища (отсутствие сводки ошибкой не считается)
func (n *NoticeService) Render(ctx context.Context, actorID uint, q NoticeQuery) ([]Notice, error) {
	notices := make([]Notice, 0, 3) //nolint:mnd

	if q.Updated != nil && *q.Updated > 0 {
		notices = append(notices, Notice{
			Level:   NoticeLevelSuccess,
			Message: fmt.Sprintf("Successfully set focus keywords for %d item(s).", *q.Updated),
		})
	}

	if q.ErrorCode != "" {
		notices = append(notices, Notice{Level: NoticeLevelError, Message: errorCodeMessage(q.ErrorCode)})
	}

	if q.HasErrors {
		items, err := n.store.PullTransient(ctx, noticeKey(actorID))
		switch {
		case err == nil && len(items) > 0:
			notices = append(notices, Notice{
				Level:   NoticeLevelWarning,
				Message: "Some items could not be updated:",
				Items:   items,
			})
		case err != nil && !errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("render notices for actor %d: %w", actorID, err)
		case err != nil:
			n.logger.Debugf("no stored notices for actor %d", actorID)
		}
	}

	return notices, nil
}

func errorCodeMessage(code string) string {
	switch code {
	case ErrorCodeInsufficientPermissions:
		return "You do not have permission to edit posts."
	case ErrorCodeNoPosts:
		return "No posts were selected for the action."
	default:
		return "An unknown error occurred."
	}
}

func noticeKey(actorID uint) string {
	return fmt.Sprintf("bulk_errors_%d", actorID)
}

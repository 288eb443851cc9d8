package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/db"
	"github.com/fsdevblog/bulkmeta/internal/repositories/memstore"
	"github.com/fsdevblog/bulkmeta/internal/repositories/pg"
	"github.com/fsdevblog/bulkmeta/internal/repositories/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// FocusKeywordActionLabel подпись действия в выпадающем списке.
const FocusKeywordActionLabel = "Set Title as Focus Keyword"

// Config настройки сервисного слоя.
type Config struct {
	MetaKey     string          // Поле метаданных фокусного ключевого слова
	PostTypes   []string        // Типы записей, для которых доступны пакетные действия
	NoticeTTL   time.Duration   // Время жизни сводки ошибок
	NoticeLimit int             // Сколько ошибок показывать в сводке
	Recorder    OutcomeRecorder // Учет исходов, может быть nil
}

type Services struct {
	Posts       PostRepository
	Actions     *BulkActions
	Notices     *NoticeService
	PingService *PingService
}

// Factory собирает сервисный слой поверх открытого соединения.
//
// Параметры:
//   - conn: соединение из db.NewConnectionFactory
//   - sType: тип сервисов, соответствующий типу соединения
//   - conf: настройки
//   - logger: логгер
//
// Возвращает:
//   - *Services: сервисный слой
//   - error: ошибка несоответствия типа соединения
func Factory(conn any, sType ServiceType, conf Config, logger *logrus.Logger) (*Services, error) {
	var posts PostRepository
	var pinger Pinger

	switch sType {
	case ServiceTypePostgres:
		pool, ok := conn.(*pgxpool.Pool)
		if !ok {
			return nil, errors.New("invalid connection type. expected *pgxpool.Pool")
		}
		posts, pinger = pg.NewPostRepo(pool, logger), pool
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		posts, pinger = sql.NewPostRepo(gormDB, logger), db.GormPinger{DB: gormDB}
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		posts, pinger = memstore.NewPostRepo(store), store
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}

	return newServices(posts, pinger, conf, logger)
}

func newServices(posts PostRepository, pinger Pinger, conf Config, logger *logrus.Logger) (*Services, error) {
	opts := []AssignerOption{WithLogger(logger)}
	if conf.Recorder != nil {
		opts = append(opts, WithOutcomeRecorder(conf.Recorder))
	}
	focusKeyword := NewFocusKeywordAssigner(conf.MetaKey, posts, posts, RoleAccess{}, SanitizeTitle, opts...)

	actions := NewBulkActions(conf.PostTypes)
	if err := actions.Register(ActionSetFocusKeyword, FocusKeywordActionLabel, focusKeyword); err != nil {
		return nil, err
	}

	// Транзиенты всегда живут в памяти процесса, независимо от хранилища записей.
	transients := memstore.NewTransientRepo(db.NewMemStorage())

	return &Services{
		Posts:       posts,
		Actions:     actions,
		Notices:     NewNoticeService(transients, conf.NoticeTTL, conf.NoticeLimit, logger),
		PingService: NewPingService(pinger),
	}, nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/bulkmeta/internal/config"
	"github.com/fsdevblog/bulkmeta/internal/controllers"
	"github.com/fsdevblog/bulkmeta/internal/db"
	"github.com/fsdevblog/bulkmeta/internal/fixtures"
	"github.com/fsdevblog/bulkmeta/internal/metrics"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/fsdevblog/bulkmeta/internal/sslcert"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

var ErrNoJWTSecret = errors.New("jwt secret is not configured")

type App struct {
	config   config.Config
	conn     any
	services *services.Services
	metrics  *metrics.BulkMetrics
	Logger   *logrus.Logger
}

// New подключает хранилище, собирает сервисный слой и загружает начальные данные, если задан SeedFile.
//
// Параметры:
//   - ctx: контекст инициализации
//   - conf: конфигурация приложения
//
// Возвращает:
//   - *App: приложение
//   - error: ошибка подключения, сборки сервисов или загрузки данных
func New(ctx context.Context, conf config.Config) (*App, error) {
	logger := conf.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := metrics.New()

	conn, err := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  db.StorageType(conf.DBType),
		PostgresDSN:  &conf.DatabaseDSN,
		SqliteDBPath: &conf.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	svc, err := services.Factory(conn, services.ServiceType(conf.DBType), services.Config{
		MetaKey:     conf.MetaKey,
		PostTypes:   conf.PostTypes,
		NoticeTTL:   conf.NoticeTTL,
		NoticeLimit: conf.NoticeLimit,
		Recorder:    m,
	}, logger)
	if err != nil {
		_ = db.CloseConnection(conn)
		return nil, fmt.Errorf("init services: %w", err)
	}

	a := &App{
		config:   conf,
		conn:     conn,
		services: svc,
		metrics:  m,
		Logger:   logger,
	}

	if conf.SeedFile != "" {
		if seedErr := a.seed(ctx, conf.SeedFile); seedErr != nil {
			a.Close()
			return nil, seedErr
		}
	}
	return a, nil
}

// Services сервисный слой приложения.
func (a *App) Services() *services.Services {
	return a.services
}

// Handler http обработчик со всеми маршрутами.
func (a *App) Handler() http.Handler {
	return controllers.SetupRouter(controllers.RouterParams{
		Actions:     a.services.Actions,
		Notices:     a.services.Notices,
		PingService: a.services.PingService,
		Metrics:     a.metrics.Handler(),
		JWTSecret:   []byte(a.config.JWTSecret),
		Logger:      a.Logger,
	})
}

// Run запускает web сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	if a.config.JWTSecret == "" {
		return fmt.Errorf("run app: %w", ErrNoJWTSecret)
	}

	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if a.config.EnableHTTPS {
		if err := a.ensureCertificate(); err != nil {
			return fmt.Errorf("run app: %w", err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		a.Logger.Infof("Starting server on %s (https: %t)", a.config.ServerAddress, a.config.EnableHTTPS)
		var err error
		if a.config.EnableHTTPS {
			err = server.ListenAndServeTLS(a.config.TLSCertFile, a.config.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.WithError(err).Error("graceful shutdown failed")
	}

	return serverErr
}

// ensureCertificate выпускает самоподписанный сертификат, если готового нет.
func (a *App) ensureCertificate() error {
	gen, err := sslcert.New()
	if err != nil {
		return fmt.Errorf("init certificate generator: %w", err)
	}
	created, err := gen.EnsurePair(a.config.TLSCertFile, a.config.TLSKeyFile)
	if err != nil {
		return fmt.Errorf("ensure certificate: %w", err)
	}
	if created {
		a.Logger.Infof("Issued self-signed certificate `%s`", a.config.TLSCertFile)
	}
	return nil
}

// Close освобождает соединение с хранилищем.
func (a *App) Close() {
	if err := db.CloseConnection(a.conn); err != nil {
		a.Logger.WithError(err).Error("close storage connection")
	}
}

func (a *App) seed(ctx context.Context, path string) error {
	f, err := fixtures.LoadFile(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	n, err := fixtures.Seed(ctx, a.services.Posts, f)
	if err != nil {
		return fmt.Errorf("seed from `%s`: %w", path, err)
	}
	a.Logger.Infof("Seeded %d posts from `%s`", n, path)
	return nil
}

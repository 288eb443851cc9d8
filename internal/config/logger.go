package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogger инициализирует логгер. LOG_LEVEL переопределяет уровень окружения.
func initLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	logger.SetFormatter(new(logrus.JSONFormatter))
	logger.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(new(logrus.TextFormatter))
	}

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			logger.Warnf("unknown log level `%s`, keeping %s", level, logger.GetLevel())
			return logger
		}
		logger.SetLevel(lvl)
	}

	return logger
}

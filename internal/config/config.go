package config

import (
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type DBType string

const (
	DBTypePostgres DBType = "postgres"
	DBTypeSQLite   DBType = "sqlite"
	DBTypeInMemory DBType = "inMemory"
)

const (
	DefaultServerAddress = "localhost:8080"
	DefaultSQLitePath    = "./bulkmeta.sqlite"
	DefaultMetaKey       = "rank_math_focus_keyword"
	DefaultNoticeTTL     = 30 * time.Second
	DefaultNoticeLimit   = 5
	DefaultTokenTTL      = 24 * time.Hour
	DefaultTLSCertFile   = "./cert.pem"
	DefaultTLSKeyFile    = "./key.pem"
)

var DefaultPostTypes = []string{"post", "page", "product"}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Тип хранилища записей
	DBType DBType `env:"DB"`
	// Путь к файлу sqlite
	SQLitePath string `env:"SQLITE_PATH"`
	// Строка подключения к postgres
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Ключ подписи JWT пользователей админки
	JWTSecret string `env:"JWT_SECRET"`
	// Поле метаданных фокусного ключевого слова
	MetaKey string `env:"FOCUS_KEYWORD_META_KEY"`
	// Типы записей, для которых доступны пакетные действия
	PostTypes []string `env:"POST_TYPES" envSeparator:","`
	// Время жизни сводки ошибок
	NoticeTTL time.Duration `env:"NOTICE_TTL"`
	// Сколько ошибок показывать в сводке
	NoticeLimit int `env:"NOTICE_LIMIT"`
	// YAML с начальными данными, загружается при старте
	SeedFile string `env:"SEED_FILE"`
	LogLevel string `env:"LOG_LEVEL"`
	// Включить HTTPS. Самоподписанный сертификат выпускается, если файлов нет или он истек
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	Logger *logrus.Logger `env:"-"`
}

// RegisterFlags объявляет флаги командной строки. Значения по умолчанию живут во флагах,
// переменные окружения имеют приоритет.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("address", "a", DefaultServerAddress, "Адрес сервера")
	fs.String("db", string(DBTypeInMemory), "Тип хранилища: inMemory, sqlite, postgres")
	fs.String("sqlite-path", DefaultSQLitePath, "Путь к файлу sqlite")
	fs.StringP("dsn", "d", "", "Строка подключения к postgres")
	fs.String("jwt-secret", "", "Ключ подписи JWT")
	fs.String("meta-key", DefaultMetaKey, "Поле метаданных фокусного ключевого слова")
	fs.StringSlice("post-types", DefaultPostTypes, "Типы записей с пакетными действиями")
	fs.Duration("notice-ttl", DefaultNoticeTTL, "Время жизни сводки ошибок")
	fs.Int("notice-limit", DefaultNoticeLimit, "Сколько ошибок показывать в сводке")
	fs.String("seed", "", "YAML с начальными данными")
	fs.String("log-level", "", "Уровень логирования")
	fs.BoolP("https", "s", false, "Включить HTTPS")
	fs.String("tls-cert", DefaultTLSCertFile, "PEM сертификата")
	fs.String("tls-key", DefaultTLSKeyFile, "PEM приватного ключа")
}

// LoadConfig собирает конфигурацию из переменных окружения и флагов.
//
// Параметры:
//   - fs: набор флагов, предварительно объявленных через RegisterFlags и разобранных
//
// Возвращает:
//   - *Config: конфигурация с инициализированным логгером
//   - error: ошибка разбора или проверки
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	var envConfig Config
	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	flagsConfig, err := readFlags(fs)
	if err != nil {
		return nil, errors.Wrap(err, "parse flags error")
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if err = conf.Validate(); err != nil {
		return nil, err
	}
	conf.Logger = initLogger(conf.LogLevel)
	return conf, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	switch c.DBType {
	case DBTypeInMemory, DBTypeSQLite:
	case DBTypePostgres:
		if c.DatabaseDSN == "" {
			return errors.Wrap(ErrInvalidConfig, "postgres storage requires DATABASE_DSN")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown storage type `%s`", c.DBType)
	}
	if c.NoticeLimit <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "notice limit must be positive, got %d", c.NoticeLimit)
	}
	if c.NoticeTTL <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "notice ttl must be positive, got %s", c.NoticeTTL)
	}
	return nil
}

func readFlags(fs *pflag.FlagSet) (*Config, error) {
	var c Config
	var err error
	var dbType string

	// Несуществующий флаг дает ошибку, поэтому набор без RegisterFlags не пройдет.
	steps := []func() error{
		func() error { c.ServerAddress, err = fs.GetString("address"); return err },
		func() error { dbType, err = fs.GetString("db"); return err },
		func() error { c.SQLitePath, err = fs.GetString("sqlite-path"); return err },
		func() error { c.DatabaseDSN, err = fs.GetString("dsn"); return err },
		func() error { c.JWTSecret, err = fs.GetString("jwt-secret"); return err },
		func() error { c.MetaKey, err = fs.GetString("meta-key"); return err },
		func() error { c.PostTypes, err = fs.GetStringSlice("post-types"); return err },
		func() error { c.NoticeTTL, err = fs.GetDuration("notice-ttl"); return err },
		func() error { c.NoticeLimit, err = fs.GetInt("notice-limit"); return err },
		func() error { c.SeedFile, err = fs.GetString("seed"); return err },
		func() error { c.LogLevel, err = fs.GetString("log-level"); return err },
		func() error { c.EnableHTTPS, err = fs.GetBool("https"); return err },
		func() error { c.TLSCertFile, err = fs.GetString("tls-cert"); return err },
		func() error { c.TLSKeyFile, err = fs.GetString("tls-key"); return err },
	}
	for _, step := range steps {
		if stepErr := step(); stepErr != nil {
			return nil, stepErr
		}
	}
	c.DBType = DBType(dbType)
	return &c, nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	postTypes := envConfig.PostTypes
	if len(postTypes) == 0 {
		postTypes = flagsConfig.PostTypes
	}
	return &Config{
		ServerAddress: defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		DBType:        defaultIfBlank(envConfig.DBType, flagsConfig.DBType),
		SQLitePath:    defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		MetaKey:       defaultIfBlank(envConfig.MetaKey, flagsConfig.MetaKey),
		PostTypes:     slices.Clone(postTypes),
		NoticeTTL:     defaultIfBlank(envConfig.NoticeTTL, flagsConfig.NoticeTTL),
		NoticeLimit:   defaultIfBlank(envConfig.NoticeLimit, flagsConfig.NoticeLimit),
		SeedFile:      defaultIfBlank(envConfig.SeedFile, flagsConfig.SeedFile),
		LogLevel:      defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		EnableHTTPS:   envConfig.EnableHTTPS || flagsConfig.EnableHTTPS,
		TLSCertFile:   defaultIfBlank(envConfig.TLSCertFile, flagsConfig.TLSCertFile),
		TLSKeyFile:    defaultIfBlank(envConfig.TLSKeyFile, flagsConfig.TLSKeyFile),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

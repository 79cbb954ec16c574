package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	Pricing   PricingConfig   `yaml:"pricing"    validate:"required"`
	Mail      MailConfig      `yaml:"mail"       validate:"required"`
	Auth      AuthConfig      `yaml:"auth"       validate:"required"`
	Offers    OffersConfig    `yaml:"offers"     validate:"required"`
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Redis     RedisConfig     `yaml:"redis"`
	AMQP      AMQPConfig      `yaml:"amqp"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"wallawalla"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval       time.Duration `yaml:"interval"        env:"SCHEDULER_INTERVAL"        env-default:"1m"  validate:"required,gt=0"`
	ReminderWindow time.Duration `yaml:"reminder_window" env:"SCHEDULER_REMINDER_WINDOW" env-default:"48h" validate:"required,gt=0"`
}

type PricingConfig struct {
	RatesPath string `yaml:"rates_path" env:"PRICING_RATES_PATH" env-default:"rates.yaml" validate:"required"`
}

type MailConfig struct {
	// BaseURL переопределяет адрес провайдера (для стейджинга и тестов).
	BaseURL       string        `yaml:"base_url"        env:"MAIL_BASE_URL"        env-default:""`
	APIKey        string        `yaml:"api_key"         env:"MAIL_API_KEY"         env-default:""`
	From          string        `yaml:"from"            env:"MAIL_FROM"            env-default:"Walla Walla Travel <bookings@wallawallatravel.com>" validate:"required"`
	PublicBaseURL string        `yaml:"public_base_url" env:"MAIL_PUBLIC_BASE_URL" env-default:"http://localhost:3000"                              validate:"required"`
	LinkTTL       time.Duration `yaml:"link_ttl"        env:"MAIL_LINK_TTL"        env-default:"168h"                                               validate:"gt=0"`
}

type AuthConfig struct {
	Secret            string        `yaml:"secret"              env:"AUTH_SECRET"              env-default:"dev-secret-change-me" validate:"required,min=16"`
	StaffPasswordHash string        `yaml:"staff_password_hash" env:"AUTH_STAFF_PASSWORD_HASH" env-default:""`
	StaffTokenTTL     time.Duration `yaml:"staff_token_ttl"     env:"AUTH_STAFF_TOKEN_TTL"     env-default:"12h" validate:"gt=0"`
}

type OffersConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"OFFER_DEFAULT_TTL" env-default:"72h" validate:"gt=0"`
}

type RateLimitConfig struct {
	Requests int64         `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"10" validate:"min=1"`
	Period   time.Duration `yaml:"period"   env:"RATE_LIMIT_PERIOD"   env-default:"1m" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	StaffChatID int64  `yaml:"staff_chat_id" env:"TELEGRAM_STAFF_CHAT_ID" env-default:"0"`
}

// RedisConfig включает распределённый rate limit; без адреса лимитер
// работает на памяти процесса.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

type AMQPConfig struct {
	URL string `yaml:"url" env:"AMQP_URL" env-default:""`
}

func MustLoad() *Config {
	// .env подхватывается до чтения окружения; без файла работаем на системных переменных
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

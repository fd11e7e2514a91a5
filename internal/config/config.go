package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/types"
)

// EnvConfigPath переменная окружения, переопределяющая путь к config.toml
const EnvConfigPath = "CONFIG_PATH"

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	ReservationAPI ReservationAPIConfig `toml:"reservation_api"`
	Shop           ShopConfig           `toml:"shop"`
	Booking        BookingConfig        `toml:"booking"`
	Kiosk          KioskConfig          `toml:"kiosk"`
	Block          BlockConfig          `toml:"block"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig подключение к PostgreSQL (журнал блокировок)
// Если Enabled=false, журнал не пишется
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig хранилище сессий бронирования
// Пустой Addr - сессии хранятся в памяти процесса
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// ReservationAPIConfig внешний API бронирований
type ReservationAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Hours рабочие часы одной поверхности
type Hours struct {
	Open  types.TimeString `toml:"open"`
	Close types.TimeString `toml:"close"`
	Step  int              `toml:"step"`
}

// ShopConfig часовой пояс и рабочие часы по поверхностям
type ShopConfig struct {
	Timezone     string `toml:"timezone"`
	BookingHours Hours  `toml:"booking_hours"`
	GridHours    Hours  `toml:"grid_hours"`
	KioskHours   Hours  `toml:"kiosk_hours"`
	BlockHours   Hours  `toml:"block_hours"`

	location *time.Location
}

// Location загруженный часовой пояс
func (c ShopConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// BookingConfig сценарий онлайн-записи
type BookingConfig struct {
	FlowTTLMinutes    int    `toml:"flow_ttl_minutes"`
	CodesPerContact   int    `toml:"codes_per_contact"`
	CodeWindowMinutes int    `toml:"code_window_minutes"`
	Service           string `toml:"service"`
}

// FlowTTL время жизни сессии записи
func (c BookingConfig) FlowTTL() time.Duration {
	return time.Duration(c.FlowTTLMinutes) * time.Minute
}

// CodeWindow окно, в котором действует лимит CodesPerContact
func (c BookingConfig) CodeWindow() time.Duration {
	return time.Duration(c.CodeWindowMinutes) * time.Minute
}

// KioskConfig табло в салоне
type KioskConfig struct {
	PollIntervalSeconds int      `toml:"poll_interval_seconds"`
	HighlightSeconds    int      `toml:"highlight_seconds"`
	BannerTemplate      string   `toml:"banner_template"`
	AllowedOrigins      []string `toml:"allowed_origins"` // пусто - любые Origin
}

// PollInterval период опроса API бронирований
func (c KioskConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// HighlightTTL сколько подсвечивается новая запись и висит баннер
func (c KioskConfig) HighlightTTL() time.Duration {
	return time.Duration(c.HighlightSeconds) * time.Second
}

// BlockConfig массовая блокировка слотов
type BlockConfig struct {
	MaxParallel int `toml:"max_parallel"`
}

// Load читает конфигурацию из файла. CONFIG_PATH, если задан, имеет приоритет над path
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Shop.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: shop.timezone %q: %v", ErrInvalidConfig, cfg.Shop.Timezone, err)
	}
	cfg.Shop.location = loc

	return cfg, nil
}

// Validate проверяет обязательные поля и рабочие часы
func (c *Config) Validate() error {
	if c.ReservationAPI.URL == "" {
		return fmt.Errorf("%w: reservation_api.url is required", ErrInvalidConfig)
	}

	surfaces := map[string]Hours{
		"booking_hours": c.Shop.BookingHours,
		"grid_hours":    c.Shop.GridHours,
		"kiosk_hours":   c.Shop.KioskHours,
		"block_hours":   c.Shop.BlockHours,
	}
	for name, h := range surfaces {
		if err := h.BusinessHours().Validate(); err != nil {
			return fmt.Errorf("%w: shop.%s: %v", ErrInvalidConfig, name, err)
		}
	}

	if c.Block.MaxParallel < 1 {
		return fmt.Errorf("%w: block.max_parallel must be positive", ErrInvalidConfig)
	}
	return nil
}

// BusinessHours часы в доменном виде
func (h Hours) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{Open: h.Open, Close: h.Close, Step: h.Step}
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Logs.Level, "info")
	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "barber-frontdesk")

	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 10)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.Redis.KeyPrefix, "frontdesk:flow:")

	setInt(&c.ReservationAPI.Timeout, 10)

	setString(&c.Shop.Timezone, "Europe/Berlin")
	setHours(&c.Shop.BookingHours, "09:30", "19:00", 30)
	setHours(&c.Shop.GridHours, "09:30", "19:00", 30)
	setHours(&c.Shop.KioskHours, "08:30", "20:00", 30)
	setHours(&c.Shop.BlockHours, "09:30", "19:00", 30)

	setInt(&c.Booking.FlowTTLMinutes, 30)
	setInt(&c.Booking.CodesPerContact, 3)
	setInt(&c.Booking.CodeWindowMinutes, 10)
	setString(&c.Booking.Service, "Haarschnitt")

	setInt(&c.Kiosk.PollIntervalSeconds, 15)
	setInt(&c.Kiosk.HighlightSeconds, 5)
	setString(&c.Kiosk.BannerTemplate, "Neue Buchung: {name} um {time}")

	setInt(&c.Block.MaxParallel, 4)
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setHours(h *Hours, open, close string, step int) {
	if h.Open.IsZero() {
		h.Open = types.MustTimeString(open)
	}
	if h.Close.IsZero() {
		h.Close = types.MustTimeString(close)
	}
	setInt(&h.Step, step)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("invalid config")

// Переменные окружения, переопределяющие секреты из файла
const (
	envDBHost              = "DB_HOST"
	envDBPassword          = "DB_PASSWORD"
	envAdminJWTSecret      = "ADMIN_JWT_SECRET"
	envResendAPIKey        = "RESEND_API_KEY"
	envCloudinaryCloudName = "CLOUDINARY_CLOUD_NAME"
	envCloudinaryAPIKey    = "CLOUDINARY_API_KEY"
	envCloudinaryAPISecret = "CLOUDINARY_API_SECRET"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Business   BusinessConfig   `toml:"business"`
	Booking    BookingConfig    `toml:"booking"`
	Admin      AdminConfig      `toml:"admin"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	Email      EmailConfig      `toml:"email"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	CORSOrigins     []string `toml:"cors_origins"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BusinessConfig часы работы студии
type BusinessConfig struct {
	Timezone            string   `toml:"timezone"`
	OpenHour            int      `toml:"open_hour"`
	CloseHour           int      `toml:"close_hour"`
	SlotIntervalMinutes int      `toml:"slot_interval_minutes"`
	ClosedWeekdays      []string `toml:"closed_weekdays"`
}

// BookingConfig правила приёма заявок
type BookingConfig struct {
	ReferencePrefix    string   `toml:"reference_prefix"`
	MaxAdvanceDays     int      `toml:"max_advance_days"`
	PendingHoldMinutes int      `toml:"pending_hold_minutes"` // 0 - заявки без чека не истекают
	HoldSweepInterval  Duration `toml:"hold_sweep_interval"`
	MaxProofSizeMB     int      `toml:"max_proof_size_mb"`
}

// PendingHold время удержания слота за заявкой без чека
func (c BookingConfig) PendingHold() time.Duration {
	return time.Duration(c.PendingHoldMinutes) * time.Minute
}

type AdminConfig struct {
	JWTSecret     string   `toml:"jwt_secret"`
	RequiredRole  string   `toml:"required_role"` // роль в токене провайдера, пустая - не проверять
	AllowedEmails []string `toml:"allowed_emails"`
}

type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // адреса/подсети прокси, чьим X-Forwarded-For можно верить
}

type EmailConfig struct {
	Enabled    bool          `toml:"enabled"`
	APIURL     string        `toml:"api_url"`
	APIKey     string        `toml:"api_key"`
	From       string        `toml:"from"`
	Timeout    int           `toml:"timeout"` // секунды
	StudioName string        `toml:"studio_name"`
	AppURL     string        `toml:"app_url"`
	Banking    BankingConfig `toml:"banking"`
}

type BankingConfig struct {
	BankName      string `toml:"bank_name"`
	AccountName   string `toml:"account_name"`
	AccountNumber string `toml:"account_number"`
	BranchCode    string `toml:"branch_code"`
	AccountType   string `toml:"account_type"`
}

type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	Folder    string `toml:"folder"`
}

// Duration длительность в формате time.ParseDuration ("5m", "30s")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию, поверх которой декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			CORSOrigins:     []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "studio-booking",
			Path:        "/metrics",
		},
		Business: BusinessConfig{
			Timezone:            "Africa/Johannesburg",
			OpenHour:            domain.DefaultOpenHour,
			CloseHour:           domain.DefaultCloseHour,
			SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
			ClosedWeekdays:      []string{"sunday"},
		},
		Booking: BookingConfig{
			ReferencePrefix:   domain.DefaultReferencePrefix,
			MaxAdvanceDays:    90,
			HoldSweepInterval: Duration{5 * time.Minute},
			MaxProofSizeMB:    domain.DefaultMaxProofSizeMB,
		},
		Admin: AdminConfig{
			RequiredRole: "authenticated",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
			Burst:             20,
		},
		Email: EmailConfig{
			Enabled: true,
			APIURL:  "https://api.resend.com",
			Timeout: 10,
		},
		Cloudinary: CloudinaryConfig{
			Folder: "payment-proofs",
		},
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	override := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	override(&c.Database.Host, envDBHost)
	override(&c.Database.Password, envDBPassword)
	override(&c.Admin.JWTSecret, envAdminJWTSecret)
	override(&c.Email.APIKey, envResendAPIKey)
	override(&c.Cloudinary.CloudName, envCloudinaryCloudName)
	override(&c.Cloudinary.APIKey, envCloudinaryAPIKey)
	override(&c.Cloudinary.APISecret, envCloudinaryAPISecret)
}

// Validate проверяет обязательные поля и допустимые диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.dbname and database.user are required", ErrInvalidConfig)
	}

	if _, err := c.BusinessHours(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Booking.MaxAdvanceDays < 0 {
		return fmt.Errorf("%w: booking.max_advance_days must not be negative", ErrInvalidConfig)
	}
	if c.Booking.PendingHoldMinutes < 0 {
		return fmt.Errorf("%w: booking.pending_hold_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Booking.PendingHoldMinutes > 0 && c.Booking.HoldSweepInterval.Duration <= 0 {
		return fmt.Errorf("%w: booking.hold_sweep_interval must be positive when holds expire", ErrInvalidConfig)
	}
	if c.Booking.MaxProofSizeMB <= 0 {
		return fmt.Errorf("%w: booking.max_proof_size_mb must be positive", ErrInvalidConfig)
	}

	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin.jwt_secret is required (or %s)", ErrInvalidConfig, envAdminJWTSecret)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.requests_per_minute and rate_limit.burst must be positive", ErrInvalidConfig)
	}

	if c.Email.Enabled && (c.Email.APIKey == "" || c.Email.From == "") {
		return fmt.Errorf("%w: email.api_key and email.from are required when email is enabled", ErrInvalidConfig)
	}

	if c.Cloudinary.CloudName == "" || c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "" {
		return fmt.Errorf("%w: cloudinary credentials are required", ErrInvalidConfig)
	}

	return nil
}

// Location часовой пояс студии
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Business.Timezone)
}

// BusinessHours собирает доменные часы работы из конфигурации
func (c *Config) BusinessHours() (domain.BusinessHours, error) {
	loc, err := c.Location()
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("business.timezone: %w", err)
	}

	closed := make([]time.Weekday, 0, len(c.Business.ClosedWeekdays))
	for _, name := range c.Business.ClosedWeekdays {
		day, err := parseWeekday(name)
		if err != nil {
			return domain.BusinessHours{}, err
		}
		closed = append(closed, day)
	}

	hours := domain.BusinessHours{
		OpenHour:            c.Business.OpenHour,
		CloseHour:           c.Business.CloseHour,
		SlotIntervalMinutes: c.Business.SlotIntervalMinutes,
		ClosedWeekdays:      closed,
		Location:            loc,
	}
	if err := hours.Validate(); err != nil {
		return domain.BusinessHours{}, err
	}

	return hours, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(strings.TrimSpace(name), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("business.closed_weekdays: unknown weekday %q", name)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwrk-planet/chat-service/internal/postgres"
	"github.com/cwrk-planet/chat-service/internal/service"
	"github.com/cwrk-planet/chat-service/internal/transport/ws"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"` // для REST-ручек, на /ws не действует
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
}

type GRPC struct {
	Addr        string        `yaml:"addr"`
	CallTimeout time.Duration `yaml:"callTimeout"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|stage|prod
	Service   string `yaml:"service"`   // chat-service
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Postgres struct {
	DSN               string        `yaml:"dsn"`
	MaxConns          int32         `yaml:"maxConns"`
	MinConns          int32         `yaml:"minConns"`
	MaxConnLifetime   time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime   time.Duration `yaml:"maxConnIdleTime"`
	HealthCheckPeriod time.Duration `yaml:"healthCheckPeriod"`
	ApplicationName   string        `yaml:"applicationName"`
}

func (p Postgres) Validate() error {
	if p.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if p.MinConns < 0 || (p.MaxConns > 0 && p.MinConns > p.MaxConns) {
		return errors.New("postgres.minConns must be in [0..maxConns]")
	}
	return nil
}

func (p Postgres) ToPGConfig() postgres.Config {
	return postgres.Config{
		DSN:               p.DSN,
		MaxConns:          p.MaxConns,
		MinConns:          p.MinConns,
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		ApplicationName:   p.ApplicationName,
	}
}

// JWT — только проверка access-токенов: приватный ключ живёт в auth-service.
type JWT struct {
	PublicKeyPath string        `yaml:"publicKeyPath"` // обязательно
	Issuer        string        `yaml:"issuer"`        // обязательно
	Audience      string        `yaml:"audience"`      // пусто — не проверяем
	ClockSkew     time.Duration `yaml:"clockSkew"`     // напр. 30s
}

func (j JWT) Validate() error {
	if j.PublicKeyPath == "" {
		return errors.New("jwt.publicKeyPath is required")
	}
	if j.Issuer == "" {
		return errors.New("jwt.issuer is required")
	}
	if j.ClockSkew < 0 || j.ClockSkew > time.Minute {
		return errors.New("jwt.clockSkew must be in [0..1m]")
	}
	return nil
}

type WS struct {
	PingInterval time.Duration `yaml:"pingInterval"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	SendBuffer   int           `yaml:"sendBuffer"`
	ReadLimit    int64         `yaml:"readLimit"`
	RateLimit    float64       `yaml:"rateLimit"` // событий/сек на соединение, 0 — без лимита
	RateBurst    int           `yaml:"rateBurst"`
}

func (w WS) Validate() error {
	if w.SendBuffer < 0 || w.ReadLimit < 0 || w.RateLimit < 0 || w.RateBurst < 0 {
		return errors.New("ws: negative limits are not allowed")
	}
	if w.RateLimit > 0 && w.RateBurst == 0 {
		return errors.New("ws.rateBurst must be > 0 when rateLimit is set")
	}
	return nil
}

func (w WS) ToOptions(origins []string) ws.Options {
	return ws.Options{
		PingInterval:   w.PingInterval,
		WriteTimeout:   w.WriteTimeout,
		SendBuffer:     w.SendBuffer,
		ReadLimit:      w.ReadLimit,
		RateLimit:      w.RateLimit,
		RateBurst:      w.RateBurst,
		AllowedOrigins: origins,
	}
}

type Chat struct {
	MaxLength       int    `yaml:"maxLength"`
	RedactionMarker string `yaml:"redactionMarker"`
	PointsPerMsg    int    `yaml:"pointsPerMessage"` // 0 — баллы не начисляются
}

func (c Chat) ToChatConfig() service.ChatConfig {
	return service.ChatConfig{
		MaxLength:       c.MaxLength,
		RedactionMarker: c.RedactionMarker,
	}
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	GRPC     GRPC     `yaml:"grpc"`
	Logging  Logging  `yaml:"logging"`
	Postgres Postgres `yaml:"postgres"`
	JWT      JWT      `yaml:"jwt"`
	WS       WS       `yaml:"ws"`
	Chat     Chat     `yaml:"chat"`
}

// LoadConfig читает .env (если есть), затем YAML из CONFIG_PATH.
// В YAML можно ссылаться на переменные окружения: ${PG_DSN}.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	if strings.TrimSpace(c.GRPC.Addr) == "" {
		return errors.New("grpc.addr is required")
	}
	if err := c.Postgres.Validate(); err != nil {
		return err
	}
	if err := c.JWT.Validate(); err != nil {
		return err
	}
	if err := c.WS.Validate(); err != nil {
		return err
	}
	if c.Chat.MaxLength < 0 || c.Chat.PointsPerMsg < 0 {
		return errors.New("chat: maxLength and pointsPerMessage must be >= 0")
	}

	// установка дефолтов, если значения не указаны
	if c.HTTP.ReadTimeout <= 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.IdleTimeout <= 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.HTTP.RequestTimeout <= 0 {
		c.HTTP.RequestTimeout = 15 * time.Second
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.GRPC.CallTimeout <= 0 {
		c.GRPC.CallTimeout = 10 * time.Second
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "chat-service"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	if c.Postgres.ApplicationName == "" {
		c.Postgres.ApplicationName = c.Logging.Service
	}
	if c.Chat.MaxLength == 0 {
		c.Chat.MaxLength = service.DefaultMaxLength
	}
	if c.Chat.RedactionMarker == "" {
		c.Chat.RedactionMarker = service.DefaultRedactionMarker
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwrk-planet/chat-service/internal/service"
)

const minimal = `
http:
  addr: ":8082"
grpc:
  addr: ":9092"
postgres:
  dsn: "${TEST_CHAT_DSN}"
jwt:
  publicKeyPath: ./keys/pub.pem
  issuer: auth
`

func TestParse_DefaultsAndEnvExpansion(t *testing.T) {
	t.Setenv("TEST_CHAT_DSN", "postgres://u:p@localhost/db")

	cfg, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Postgres.DSN != "postgres://u:p@localhost/db" {
		t.Fatalf("env not expanded: %q", cfg.Postgres.DSN)
	}
	if cfg.Logging.Service != "chat-service" || cfg.Logging.Backend != "std" || cfg.Logging.Env != "dev" {
		t.Fatalf("logging defaults not applied: %+v", cfg.Logging)
	}
	if cfg.Chat.MaxLength != service.DefaultMaxLength || cfg.Chat.RedactionMarker != service.DefaultRedactionMarker {
		t.Fatalf("chat defaults not applied: %+v", cfg.Chat)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second || cfg.GRPC.CallTimeout != 10*time.Second {
		t.Fatalf("timeouts defaults not applied: %+v %+v", cfg.HTTP, cfg.GRPC)
	}
	if cfg.Postgres.ApplicationName != "chat-service" {
		t.Fatalf("application name default: %q", cfg.Postgres.ApplicationName)
	}
}

func TestParse_RequiredFields(t *testing.T) {
	t.Setenv("TEST_CHAT_DSN", "")

	_, err := Parse([]byte(minimal))
	if err == nil || !strings.Contains(err.Error(), "postgres.dsn") {
		t.Fatalf("expected postgres.dsn error, got %v", err)
	}

	noIssuer := strings.Replace(minimal, "issuer: auth", "", 1)
	t.Setenv("TEST_CHAT_DSN", "dsn")
	_, err = Parse([]byte(noIssuer))
	if err == nil || !strings.Contains(err.Error(), "jwt.issuer") {
		t.Fatalf("expected jwt.issuer error, got %v", err)
	}
}

func TestParse_WSRateLimitNeedsBurst(t *testing.T) {
	t.Setenv("TEST_CHAT_DSN", "dsn")

	_, err := Parse([]byte(minimal + "ws:\n  rateLimit: 5\n"))
	if err == nil || !strings.Contains(err.Error(), "rateBurst") {
		t.Fatalf("expected rateBurst error, got %v", err)
	}
}

func TestLoadConfig_FromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(minimal+"ws:\n  pingInterval: 5s\n  sendBuffer: 32\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TEST_CHAT_DSN", "dsn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cfg.WS.ToOptions([]string{"https://example.com"})
	if opts.PingInterval != 5*time.Second || opts.SendBuffer != 32 || len(opts.AllowedOrigins) != 1 {
		t.Fatalf("unexpected ws options: %+v", opts)
	}
}

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config reúne toda la configuración del servicio.
// Todo viene de variables de entorno; nada se lee de archivos salvo SEED_FILE.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	// Storage: DB_MEMORY > DB_DSN (Postgres) > DB_PATH (SQLite).
	DBPath   string `env:"DB_PATH" envDefault:"./pets.db"`
	DBDSN    string `env:"DB_DSN"`
	DBMemory bool   `env:"DB_MEMORY" envDefault:"false"`

	AdminPassword string        `env:"ADMIN_PASSWORD"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`
	TelegramAPIBase  string `env:"TELEGRAM_API_BASE" envDefault:"https://api.telegram.org"`
	NotifyQueueSize  int    `env:"NOTIFY_QUEUE_SIZE" envDefault:"64"`

	IPLookupURL      string `env:"IP_LOOKUP_URL" envDefault:"https://api64.ipify.org?format=json"`
	PublicIPOverride string `env:"PUBLIC_IP_OVERRIDE"`

	// TrustProxy: tomar la IP del visitante de X-Real-IP / X-Forwarded-For.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	ImagesDir   string `env:"IMAGES_DIR" envDefault:"./public/images"`
	FrontendDir string `env:"FRONTEND_DIR"`

	SeedFile  string `env:"SEED_FILE"`
	SeedReset bool   `env:"SEED_RESET" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"pet-adoption"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load parsea el entorno y aplica defaults derivados.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "5000"
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.NotifyQueueSize <= 0 {
		return fmt.Errorf("NOTIFY_QUEUE_SIZE must be positive")
	}

	// Sin secreto explícito generamos uno por proceso:
	// las sesiones no sobreviven a un reinicio, lo cual está bien para un solo admin.
	if strings.TrimSpace(c.SessionSecret) == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		c.SessionSecret = hex.EncodeToString(b)
	}
	return nil
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// TelegramEnabled indica si hay credenciales para notificar adopciones.
func (c Config) TelegramEnabled() bool {
	return strings.TrimSpace(c.TelegramBotToken) != "" && strings.TrimSpace(c.TelegramChatID) != ""
}

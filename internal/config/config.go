package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "solar.db"
	defaultBaseURL       = "http://localhost:8080"
	defaultLeadSource    = "website"
	defaultSMTPPort      = "587"
	defaultRateLimitRPS  = "2"
	defaultRateBurst     = "10"
	defaultCORSOrigins   = "*"
	defaultTemplatesGlob = "web/templates/*.html"
	defaultStaticDir     = "web/static"
)

// SMTPConfig holds the email alert channel credentials.
// The channel stays in dry-run mode unless Host, User, Pass and To are all set.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// Configured reports whether the email channel may attempt network I/O.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != "" && c.To != ""
}

// WhatsAppConfig holds the WhatsApp Cloud API credentials.
type WhatsAppConfig struct {
	Token   string
	PhoneID string
	To      string
}

// Configured reports whether the WhatsApp channel has full credentials.
func (c WhatsAppConfig) Configured() bool {
	return c.Token != "" && c.PhoneID != "" && c.To != ""
}

// Config is the process-wide configuration, built once in main and passed
// by reference into the components that need it.
type Config struct {
	Port        string
	DatabaseURL string
	BaseURL     string
	LeadSource  string

	CORSOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	RedisAddr     string
	RedisPassword string

	SMTP     SMTPConfig
	WhatsApp WhatsAppConfig

	TemplatesGlob string
	StaticDir     string
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		BaseURL:     strings.TrimRight(getEnv("SITE_BASE_URL", defaultBaseURL), "/"),
		LeadSource:  getEnv("LEAD_DEFAULT_SOURCE", defaultLeadSource),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		TemplatesGlob: getEnv("TEMPLATES_GLOB", defaultTemplatesGlob),
		StaticDir:     getEnv("STATIC_DIR", defaultStaticDir),
	}

	for _, o := range strings.Split(getEnv("CORS_ORIGINS", defaultCORSOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	var err error
	cfg.RateLimitRPS, err = parseFloatEnv("RATE_LIMIT_RPS", defaultRateLimitRPS)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst, err = parseIntEnv("RATE_LIMIT_BURST", defaultRateBurst)
	if err != nil {
		return nil, err
	}

	smtpPort, err := parseIntEnv("SMTP_PORT", defaultSMTPPort)
	if err != nil {
		return nil, err
	}
	cfg.SMTP = SMTPConfig{
		Host: strings.TrimSpace(os.Getenv("SMTP_HOST")),
		Port: smtpPort,
		User: strings.TrimSpace(os.Getenv("SMTP_USER")),
		Pass: strings.TrimSpace(os.Getenv("SMTP_PASS")),
		From: strings.TrimSpace(os.Getenv("ALERT_EMAIL_FROM")),
		To:   strings.TrimSpace(os.Getenv("ALERT_EMAIL_TO")),
	}
	if cfg.SMTP.From == "" {
		if cfg.SMTP.User != "" {
			cfg.SMTP.From = cfg.SMTP.User
		} else {
			cfg.SMTP.From = "noreply@example.com"
		}
	}

	cfg.WhatsApp = WhatsAppConfig{
		Token:   strings.TrimSpace(os.Getenv("WHATSAPP_TOKEN")),
		PhoneID: strings.TrimSpace(os.Getenv("WHATSAPP_PHONE_ID")),
		To:      strings.TrimSpace(os.Getenv("WHATSAPP_TO")),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be > 0")
	}
	if cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be > 0")
	}
	if cfg.SMTP.Port <= 0 || cfg.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port number")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key, def string) (int, error) {
	v, err := strconv.Atoi(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseFloatEnv(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(getEnv(key, def), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the notifier
type Config struct {
	Log           LogConfig           `mapstructure:"log"`
	Email         EmailConfig         `mapstructure:"email"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EmailConfig holds transport configuration
type EmailConfig struct {
	// Provider selects the outbound transport: "gmail", "mailgun", "resend"
	// or "memory" (records messages in process, used for dry runs and tests).
	Provider string `mapstructure:"provider"`
	// SenderAddress is the "From" address for all outbound mail.
	SenderAddress string `mapstructure:"sender_address"`
	// SenderName is the display name shown next to the sender address.
	SenderName string `mapstructure:"sender_name"`

	Gmail   GmailConfig   `mapstructure:"gmail"`
	Mailgun MailgunConfig `mapstructure:"mailgun"`
	Resend  ResendConfig  `mapstructure:"resend"`
}

// GmailConfig holds Gmail API credentials.
// Either CredentialsJSON (service account with domain-wide delegation) or the
// ClientID/ClientSecret/RefreshToken triple (personal mailbox) must be set.
type GmailConfig struct {
	CredentialsJSON string `mapstructure:"credentials_json"`
	ClientID        string `mapstructure:"client_id"`
	ClientSecret    string `mapstructure:"client_secret"`
	RefreshToken    string `mapstructure:"refresh_token"`
}

// MailgunConfig holds Mailgun API credentials
type MailgunConfig struct {
	APIKey string `mapstructure:"api_key"`
	Domain string `mapstructure:"domain"`
	// Region is "us" or "eu"
	Region string `mapstructure:"region"`
}

// ResendConfig holds Resend API credentials
type ResendConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// NotificationsConfig holds dispatch behaviour settings
type NotificationsConfig struct {
	// AdminEmails receive a copy of every customer notification, in order.
	// May be empty; duplicates are not removed.
	AdminEmails []string `mapstructure:"admin_emails"`
	// IncludeQRCode embeds an order QR code in confirmation emails.
	IncludeQRCode bool `mapstructure:"include_qr_code"`
	// DeliveryLog persists a row per send attempt (requires database.enabled).
	DeliveryLog bool `mapstructure:"delivery_log"`
	// CooldownEnabled suppresses duplicate sends of the same notification
	// within Cooldown (requires redis.enabled). Off by default: re-invoking
	// a send resends.
	CooldownEnabled bool          `mapstructure:"cooldown_enabled"`
	Cooldown        time.Duration `mapstructure:"cooldown"`
}

// DatabaseConfig holds PostgreSQL configuration for the delivery log
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// RedisConfig holds Redis configuration for the send cooldown
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bloombasket")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("BLOOMBASKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Admin emails arrive as one comma-separated value when set through the
	// environment; viper does not split env vars into slices.
	cfg.Notifications.AdminEmails = splitEmails(cfg.Notifications.AdminEmails)

	return &cfg, nil
}

// Validate checks the settings required before any send operation.
// Commands that dispatch mail call it at startup; preview-only commands skip
// it so rendered bodies can be inspected without transport credentials.
func (c *Config) Validate() error {
	if c.Email.SenderAddress == "" {
		return fmt.Errorf("email.sender_address is required")
	}
	switch c.Email.Provider {
	case "gmail":
		hasServiceAccount := c.Email.Gmail.CredentialsJSON != ""
		hasToken := c.Email.Gmail.ClientID != "" && c.Email.Gmail.ClientSecret != "" && c.Email.Gmail.RefreshToken != ""
		if !hasServiceAccount && !hasToken {
			return fmt.Errorf("email.gmail requires credentials_json or a client_id/client_secret/refresh_token set")
		}
	case "mailgun":
		if c.Email.Mailgun.APIKey == "" || c.Email.Mailgun.Domain == "" {
			return fmt.Errorf("email.mailgun requires api_key and domain")
		}
	case "resend":
		if c.Email.Resend.APIKey == "" {
			return fmt.Errorf("email.resend requires api_key")
		}
	case "memory":
		// no credentials required
	default:
		return fmt.Errorf("unsupported email provider: %s", c.Email.Provider)
	}
	if c.Notifications.DeliveryLog && !c.Database.Enabled {
		return fmt.Errorf("notifications.delivery_log requires database.enabled")
	}
	if c.Notifications.CooldownEnabled && !c.Redis.Enabled {
		return fmt.Errorf("notifications.cooldown_enabled requires redis.enabled")
	}
	return nil
}

func splitEmails(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, addr := range strings.Split(entry, ",") {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Email defaults
	v.SetDefault("email.provider", "gmail")
	v.SetDefault("email.sender_address", "")
	v.SetDefault("email.sender_name", "BloomBasket")
	v.SetDefault("email.mailgun.region", "us")

	// Notification defaults
	v.SetDefault("notifications.admin_emails", []string{})
	v.SetDefault("notifications.include_qr_code", false)
	v.SetDefault("notifications.delivery_log", false)
	v.SetDefault("notifications.cooldown_enabled", false)
	v.SetDefault("notifications.cooldown", "5m")

	// Database defaults
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "bloombasket")
	v.SetDefault("database.user", "bloombasket")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 25)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

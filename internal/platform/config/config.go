package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Instance      InstanceConfig      `mapstructure:"instance"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Path           string `mapstructure:"path"`
	MaxConnections int    `mapstructure:"max_connections"`
}

type JWTConfig struct {
	Secret          string        `mapstructure:"secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

// NotificationsConfig controls the delivery worker pool. RetryAttempts is the
// total attempt ceiling per task, RetryDelay the fixed pause between attempts.
type NotificationsConfig struct {
	WorkerCount    int           `mapstructure:"worker_count"`
	QueueCapacity  int           `mapstructure:"queue_capacity"`
	RetryAttempts  int           `mapstructure:"retry_attempts"`
	RetryDelay     time.Duration `mapstructure:"retry_delay"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// InstanceConfig identifies this installation in outbound payloads and links.
type InstanceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Cloud   bool   `mapstructure:"cloud"`
	BaseURL string `mapstructure:"base_url"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("notifications.worker_count", 4)
	viper.SetDefault("notifications.queue_capacity", 256)
	viper.SetDefault("notifications.retry_attempts", 5)
	viper.SetDefault("notifications.retry_delay", 10*time.Second)
	viper.SetDefault("notifications.request_timeout", 10*time.Second)
	viper.SetDefault("instance.name", "Coolify")
	viper.SetDefault("instance.version", "4.0.0")
	viper.SetDefault("logging.level", "info")
}

package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/spf13/viper"
)

var defaults = map[string]interface{}{
	"APP_NAME":                "ledger",
	"APP_ENV":                 "local",
	"APP_VERSION":             "dev",
	"SERVER_HOST":             "0.0.0.0",
	"SERVER_PORT":             8080,
	"SERVER_READ_TIMEOUT":     10,
	"SERVER_WRITE_TIMEOUT":    10,
	"SERVER_SHUTDOWN_TIMEOUT": 30,
	"DB_DRIVER":               "postgres",
	"DB_HOST":                 "localhost",
	"DB_PORT":                 5432,
	"DB_SSL_MODE":             "disable",
	"DB_MAX_CONNS":            10,
	"DB_IDLE_CONNS":           5,
	"REDIS_ENABLED":           true,
	"REDIS_HOST":              "localhost",
	"REDIS_PORT":              6379,
	"REDIS_POOL_SIZE":         10,
	"NATS_ENABLED":            true,
	"NATS_URL":                "nats://localhost:4222",
	"JWT_EXPIRATION":          60,
	"JWT_ISSUER":              "ledger",
	"WEBHOOK_TIMEOUT":         5,
	"WEBHOOK_MAX_RETRIES":     2,
	"LOG_LEVEL":               "info",
}

// InitConfig reads configuration from the environment. In the local
// environment the env file at configPath is read first; real environment
// variables always win over it.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) *models.Config {
	cfg := &models.Config{}

	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENV")
	cfg.App.Version = v.GetString("APP_VERSION")

	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = getInt(v, "SERVER_PORT")
	cfg.Server.ReadTimeout = getInt(v, "SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = getInt(v, "SERVER_WRITE_TIMEOUT")
	cfg.Server.ShutdownTimeout = getInt(v, "SERVER_SHUTDOWN_TIMEOUT")

	cfg.Database.Driver = v.GetString("DB_DRIVER")
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = getInt(v, "DB_PORT")
	cfg.Database.Username = v.GetString("DB_USERNAME")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Database = v.GetString("DB_NAME")
	cfg.Database.SSLMode = v.GetString("DB_SSL_MODE")
	cfg.Database.MaxConns = getInt(v, "DB_MAX_CONNS")
	cfg.Database.IdleConns = getInt(v, "DB_IDLE_CONNS")

	cfg.Redis.Enabled = getBool(v, "REDIS_ENABLED")
	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = getInt(v, "REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = getInt(v, "REDIS_DB")
	cfg.Redis.PoolSize = getInt(v, "REDIS_POOL_SIZE")

	cfg.NATS.Enabled = getBool(v, "NATS_ENABLED")
	cfg.NATS.URL = v.GetString("NATS_URL")

	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.Expiration = getInt(v, "JWT_EXPIRATION")
	cfg.JWT.Issuer = v.GetString("JWT_ISSUER")

	cfg.Webhook.URL = v.GetString("WEBHOOK_URL")
	cfg.Webhook.Timeout = getInt(v, "WEBHOOK_TIMEOUT")
	cfg.Webhook.MaxRetries = getInt(v, "WEBHOOK_MAX_RETRIES")

	cfg.NewRelic.Enabled = getBool(v, "NEW_RELIC_ENABLED")
	cfg.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	cfg.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	cfg.NewRelic.ForwardLogs = getBool(v, "NEW_RELIC_FORWARD_LOGS")

	cfg.Logger.Level = v.GetString("LOG_LEVEL")
	cfg.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return cfg
}

// getInt falls back to the registered default when the value is not a number
func getInt(v *viper.Viper, key string) int {
	raw := strings.TrimSpace(v.GetString(key))
	def, _ := defaults[key].(int)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, def)
		return def
	}
	return value
}

func getBool(v *viper.Viper, key string) bool {
	raw := strings.TrimSpace(v.GetString(key))
	def, _ := defaults[key].(bool)
	if raw == "" {
		return def
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, def)
		return def
	}
	return value
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the key/value connection string used by the GORM driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DatabaseURL returns the URL form used by golang-migrate.
func (c DatabaseConfig) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// KafkaConfig holds broker settings. No brokers disables messaging.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// Enabled reports whether any broker is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	StorageDriver  string
	DataDir        string
	MigrationsPath string
	DBConfig       DatabaseConfig
	MongoConfig    MongoConfig
	KafkaConfig    KafkaConfig
}

// Load reads configuration from HOTEL_* environment variables, optionally
// overlaid on a config.yaml in the working directory.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("HOTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	setDefaults(v)
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hotel_booking")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "hotel_booking")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_GROUP_PREFIX", "hotel-")
}

func fromViper(v *viper.Viper) (*ServiceConfig, error) {
	driver := strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER")))
	switch driver {
	case StorageMemory, StorageFile, StoragePostgres, StorageMongo:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:           port,
		AppEnv:         v.GetString("APP_ENV"),
		StorageDriver:  driver,
		DataDir:        v.GetString("DATA_DIR"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		MongoConfig: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
		},
		KafkaConfig: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

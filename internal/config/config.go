package config

import (
	"time"

	pkgconfig "github.com/weiawesome/bestiary-search/pkg/config"
	"github.com/weiawesome/bestiary-search/pkg/database"
)

const (
	StoreDatabase      = "database"
	StoreElasticsearch = "elasticsearch"

	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Server        ServerConfig
	Store         StoreConfig
	Database      DatabaseConfig
	Elasticsearch ElasticsearchConfig
	Redis         RedisConfig
	Cache         CacheConfig
	Invalidation  InvalidationConfig
	Log           LogConfig
}

type ServerConfig struct {
	Host     string
	Port     int
	BasePath string `mapstructure:"base_path"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	TimeZone        string `mapstructure:"timezone"`
	FilePath        string `mapstructure:"file_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
	LogLevel        string `mapstructure:"log_level"`
}

// ToDatabaseConfig converts to the shared pkg/database config.
func (c DatabaseConfig) ToDatabaseConfig() *database.Config {
	return &database.Config{
		Driver:          c.Driver,
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		DBName:          c.DBName,
		SSLMode:         c.SSLMode,
		TimeZone:        c.TimeZone,
		FilePath:        c.FilePath,
		MaxIdleConns:    c.MaxIdleConns,
		MaxOpenConns:    c.MaxOpenConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		LogLevel:        c.LogLevel,
	}
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Index     string   `mapstructure:"index"`
	PageSize  int      `mapstructure:"page_size"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Driver     string        `mapstructure:"driver"`
	Prefix     string        `mapstructure:"prefix"`
	TTL        time.Duration `mapstructure:"ttl"`
	MemorySize int           `mapstructure:"memory_size"`
}

type InvalidationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8095)
	v.SetDefault("server.base_path", "/search-service/api")
	v.SetDefault("store.driver", StoreDatabase)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "bestiary")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.file_path", "./data/bestiary.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("elasticsearch.addresses", []string{"http://localhost:9200"})
	v.SetDefault("elasticsearch.index", "cdc-public-bestiaries")
	v.SetDefault("elasticsearch.page_size", 1000)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.driver", CacheRedis)
	v.SetDefault("cache.prefix", "bestiary")
	v.SetDefault("cache.ttl", "900s")
	v.SetDefault("cache.memory_size", 1024)
	v.SetDefault("invalidation.enabled", false)
	v.SetDefault("invalidation.brokers", "localhost:9092")
	v.SetDefault("invalidation.topic", "bestiary-events")
	v.SetDefault("invalidation.group_id", "bestiary-search")
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.base_path", "BASE_PATH")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")
	v.BindEnv("database.file_path", "DB_FILE_PATH")
	v.BindEnv("database.max_idle_conns", "DB_MAX_IDLE_CONNS")
	v.BindEnv("database.max_open_conns", "DB_MAX_OPEN_CONNS")
	v.BindEnv("database.conn_max_lifetime", "DB_CONN_MAX_LIFETIME")
	v.BindEnv("elasticsearch.addresses", "ES_ADDRESSES")
	v.BindEnv("elasticsearch.index", "ES_INDEX")
	v.BindEnv("redis.address", "REDIS_ADDRESS")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("cache.driver", "CACHE_DRIVER")
	v.BindEnv("cache.ttl", "CACHE_TTL")
	v.BindEnv("invalidation.enabled", "KAFKA_INVALIDATION_ENABLED")
	v.BindEnv("invalidation.brokers", "KAFKA_BROKERS")
	v.BindEnv("invalidation.topic", "KAFKA_TOPIC")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Package config 读取服务配置 (环境变量 + 可选配置文件) 并初始化日志
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Addr string
}

// DBConfig 数据库配置
type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	MaxRetries    int
	RetryInterval time.Duration
	SeedFile      string
}

// DSN PostgreSQL 连接串
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// AuthConfig API 认证配置
type AuthConfig struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Airports int
	Shards   int
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string
	Format string
}

// Config 全部配置
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	Cache  CacheConfig
	Log    LogConfig
}

// ErrMissingCredentials 没有配置 API 用户名或密码
var ErrMissingCredentials = errors.New("未设置 API_USERNAME 或 API_PASSWORD")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8000")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "airports")
	v.SetDefault("db.password", "airports")
	v.SetDefault("db.name", "airports")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_retries", 30)
	v.SetDefault("db.retry_interval", 2*time.Second)
	v.SetDefault("db.seed_file", "GlobalAirportDatabase.txt")

	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.ttl", 24*time.Hour)

	v.SetDefault("cache.airports", 9300)
	v.SetDefault("cache.shards", 16)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// New 创建 viper 实例: 环境变量中的 "." 用 "_" 代替，例如 DB_HOST
// configFile 为空时只读取环境变量
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// 没有默认值的 key 需要显式绑定，否则 AutomaticEnv 不会读取
	_ = v.BindEnv("api.username")
	_ = v.BindEnv("api.password")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}
	return v, nil
}

// Load 从 viper 实例中解析配置
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Addr: v.GetString("server.addr")},
		DB: DBConfig{
			Host:          v.GetString("db.host"),
			Port:          v.GetString("db.port"),
			User:          v.GetString("db.user"),
			Password:      v.GetString("db.password"),
			Name:          v.GetString("db.name"),
			SSLMode:       v.GetString("db.sslmode"),
			MaxRetries:    v.GetInt("db.max_retries"),
			RetryInterval: v.GetDuration("db.retry_interval"),
			SeedFile:      v.GetString("db.seed_file"),
		},
		Auth: AuthConfig{
			Username:  v.GetString("api.username"),
			Password:  v.GetString("api.password"),
			JWTSecret: v.GetString("jwt.secret"),
			TokenTTL:  v.GetDuration("jwt.ttl"),
		},
		Cache: CacheConfig{
			Airports: v.GetInt("cache.airports"),
			Shards:   v.GetInt("cache.shards"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return nil, ErrMissingCredentials
	}
	return cfg, nil
}

// InitLogger 设置全局 logrus 日志级别和格式 (json 或 text)
func InitLogger(c LogConfig) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}

	switch c.Format {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	case "json", "":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("未知的日志格式: %q", c.Format)
	}

	logrus.SetLevel(level)
	return nil
}

// Package config 提供配置管理
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	API       APIConfig
	Scheduler SchedulerConfig
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `env:"APP_NAME" envDefault:"zhiban"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	Port     int    `env:"APP_PORT" envDefault:"7012"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	Name            string        `env:"DB_NAME" envDefault:"zhiban"`
	User            string        `env:"DB_USER" envDefault:"zhiban"`
	Password        string        `env:"DB_PASSWORD" envDefault:"zhiban123"`
	SSLMode         string        `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// DSN 返回数据库连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// APIConfig API配置
type APIConfig struct {
	Timeout         time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"API_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SchedulerConfig 排班引擎配置
type SchedulerConfig struct {
	// 单次生成的墙钟上限，在引擎外层通过 context 实施
	GenerateTimeout time.Duration `env:"SCHEDULER_GENERATE_TIMEOUT" envDefault:"30s"`
}

// Load 从环境变量加载配置
// 先尝试加载 .env 文件（不存在则忽略），再解析环境变量。
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return cfg, nil
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Package logger 提供统一的日志框架
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Config 日志配置
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"` // json/console
	Output     string `json:"output"` // stdout/stderr
	TimeFormat string `json:"time_format,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(parseLevel(cfg.Level))

		var output io.Writer
		if cfg.Output == "stderr" {
			output = os.Stderr
		} else {
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		Init(DefaultConfig())
	}
	return &logger
}

// Debug 记录调试日志
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn 记录警告日志
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error 记录错误日志
func Error() *zerolog.Event {
	return Get().Error()
}

// Fatal 记录致命错误日志
func Fatal() *zerolog.Event {
	return Get().Fatal()
}

// WithError 添加错误信息
func WithError(err error) *zerolog.Event {
	return Get().Error().Err(err)
}

// Component 创建带组件名的子日志器
func Component(name string) *zerolog.Logger {
	l := Get().With().Str("component", name).Logger()
	return &l
}

// GenerationLogger 排班生成专用日志器
// 引擎本身不打日志，由调用引擎的服务层通过它记录生成过程。
type GenerationLogger struct {
	base *zerolog.Logger
}

// NewGenerationLogger 创建排班生成日志器
func NewGenerationLogger() *GenerationLogger {
	return &GenerationLogger{base: Component("schedule_generation")}
}

// Start 记录生成开始
func (l *GenerationLogger) Start(startDate, endDate string, employees, rules int) {
	l.base.Info().
		Str("start_date", startDate).
		Str("end_date", endDate).
		Int("employees", employees).
		Int("rules", rules).
		Msg("开始生成排班")
}

// Complete 记录生成完成
func (l *GenerationLogger) Complete(scheduleID string, duration time.Duration, assignments, warnings int) {
	l.base.Info().
		Str("schedule_id", scheduleID).
		Dur("duration", duration).
		Int("assignments", assignments).
		Int("warnings", warnings).
		Msg("排班生成完成")
}

// Warning 记录生成告警
func (l *GenerationLogger) Warning(scheduleID, message string) {
	l.base.Warn().
		Str("schedule_id", scheduleID).
		Str("warning", message).
		Msg("排班生成告警")
}

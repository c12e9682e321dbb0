// ZhiBan 排班引擎服务
// 主程序入口

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zhiban/zhiban/internal/config"
	"github.com/zhiban/zhiban/internal/database"
	"github.com/zhiban/zhiban/internal/handler"
	"github.com/zhiban/zhiban/internal/repository"
	"github.com/zhiban/zhiban/pkg/logger"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logFormat := "json"
	if cfg.IsDevelopment() {
		logFormat = "console"
	}
	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: logFormat,
	})

	logger.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Str("env", cfg.App.Env).
		Msg("ZhiBan 排班引擎启动")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("数据库初始化失败")
	}
	defer db.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(migrateCtx); err != nil {
		cancelMigrate()
		logger.Fatal().Err(err).Msg("数据库迁移失败")
	}
	cancelMigrate()

	employeeRepo := repository.NewEmployeeRepository(db)
	timeOffRepo := repository.NewTimeOffRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	router := handler.NewRouter(handler.Handlers{
		Employee: handler.NewEmployeeHandler(employeeRepo),
		TimeOff:  handler.NewTimeOffHandler(timeOffRepo, employeeRepo),
		Rule:     handler.NewRuleHandler(ruleRepo),
		Schedule: handler.NewScheduleHandler(
			scheduleRepo, employeeRepo, timeOffRepo, ruleRepo,
			cfg.Scheduler.GenerateTimeout,
		),
	}, handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}, func(r *http.Request) error {
		return db.Health(r.Context())
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.API.Timeout * 2,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info().
			Int("port", cfg.App.Port).
			Msg("服务器监听中")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("服务器启动失败")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
		os.Exit(1)
	}

	logger.Info().Msg("服务器已关闭")
}

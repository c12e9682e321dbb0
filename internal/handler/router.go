// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhiban/zhiban/pkg/logger"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Employee *EmployeeHandler
	TimeOff  *TimeOffHandler
	Rule     *RuleHandler
	Schedule *ScheduleHandler
}

// BuildInfo 构建版本信息
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// NewRouter 组装HTTP路由
func NewRouter(h Handlers, build BuildInfo, healthCheck func(r *http.Request) error) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if healthCheck != nil {
			if err := healthCheck(req); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
				return
			}
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/version", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, build)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.Employee.Create)
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)
			r.Put("/{id}", h.Employee.Update)
			r.Delete("/{id}", h.Employee.Deactivate)
			r.Get("/{id}/time-off", h.TimeOff.ListByEmployee)
		})

		r.Route("/time-off", func(r chi.Router) {
			r.Post("/", h.TimeOff.Create)
			r.Patch("/{id}/status", h.TimeOff.UpdateStatus)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Post("/", h.Rule.Create)
			r.Get("/", h.Rule.List)
			r.Patch("/{id}/active", h.Rule.SetActive)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/generate", h.Schedule.Generate)
			r.Get("/", h.Schedule.List)
			r.Get("/{id}", h.Schedule.Get)
			r.Post("/{id}/publish", h.Schedule.Publish)
			r.Post("/{id}/archive", h.Schedule.Archive)
			r.Post("/{id}/assignments", h.Schedule.AddAssignment)
			r.Get("/{id}/coverage", h.Schedule.Coverage)
			r.Get("/{id}/workload", h.Schedule.Workload)
			r.Get("/{id}/validate", h.Schedule.Validate)
		})
	})

	return r
}

// requestLogger 请求日志中间件
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP请求")
	})
}

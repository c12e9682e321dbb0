// Package handler 提供HTTP请求处理器
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/internal/repository"
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/logger"
	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler"
	"github.com/zhiban/zhiban/pkg/stats"
	"github.com/zhiban/zhiban/pkg/validator"
)

// ScheduleHandler 排班处理器
// 负责编排一次排班生成：加载输入、调用引擎、落库、记录日志。
// 引擎本身不打日志也不感知 context，超时在这一层包装。
type ScheduleHandler struct {
	scheduleRepo *repository.ScheduleRepository
	employeeRepo *repository.EmployeeRepository
	timeOffRepo  *repository.TimeOffRepository
	ruleRepo     *repository.RuleRepository

	generateTimeout time.Duration
}

// NewScheduleHandler 创建排班处理器
func NewScheduleHandler(
	scheduleRepo *repository.ScheduleRepository,
	employeeRepo *repository.EmployeeRepository,
	timeOffRepo *repository.TimeOffRepository,
	ruleRepo *repository.RuleRepository,
	generateTimeout time.Duration,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleRepo:    scheduleRepo,
		employeeRepo:    employeeRepo,
		timeOffRepo:     timeOffRepo,
		ruleRepo:        ruleRepo,
		generateTimeout: generateTimeout,
	}
}

// generateRequest 排班生成请求
type generateRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// generateResponse 排班生成响应
type generateResponse struct {
	Schedule *model.SchedulePeriod     `json:"schedule"`
	Warnings []string                  `json:"warnings,omitempty"`
	Score    scheduler.SchedulingScore `json:"score"`
}

// Generate 生成排班
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	window := model.DateRange{StartDate: req.StartDate, EndDate: req.EndDate}

	employees, err := h.employeeRepo.ListActive(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	timeOff, err := h.timeOffRepo.ListOverlapping(r.Context(), window)
	if err != nil {
		respondError(w, err)
		return
	}
	rules, err := h.ruleRepo.LoadRules(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	gen, err := scheduler.NewGenerator(window, employees, rules, timeOff)
	if err != nil {
		respondError(w, err)
		return
	}

	genLog := logger.NewGenerationLogger()
	genLog.Start(req.StartDate, req.EndDate, len(employees), len(rules))
	started := time.Now()

	period, warnings, err := h.runGenerate(r.Context(), gen)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.scheduleRepo.Create(r.Context(), period); err != nil {
		respondError(w, err)
		return
	}

	genLog.Complete(period.ID.String(), time.Since(started), len(period.Assignments), len(warnings))
	for _, warning := range warnings {
		genLog.Warning(period.ID.String(), warning)
	}

	respondJSON(w, http.StatusCreated, generateResponse{
		Schedule: period,
		Warnings: warnings,
		Score:    gen.Score(period),
	})
}

// runGenerate 在独立协程中运行引擎并套用超时
func (h *ScheduleHandler) runGenerate(ctx context.Context, gen *scheduler.Generator) (*model.SchedulePeriod, []string, error) {
	if h.generateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.generateTimeout)
		defer cancel()
	}

	type result struct {
		period   *model.SchedulePeriod
		warnings []string
	}
	done := make(chan result, 1)
	go func() {
		period, warnings := gen.Generate()
		done <- result{period: period, warnings: warnings}
	}()

	select {
	case res := <-done:
		return res.period, res.warnings, nil
	case <-ctx.Done():
		return nil, nil, errors.Wrap(ctx.Err(), errors.CodeInternal, "排班生成超时")
	}
}

// Get 获取排班周期
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	period, err := h.scheduleRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, period)
}

// List 列出排班周期
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := listFilter(r)
	if start, end := r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"); start != "" && end != "" {
		filter = filter.WithDateRange(start, end)
	}
	periods, err := h.scheduleRepo.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, periods)
}

// Publish 发布排班
func (h *ScheduleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.SchedulePublished)
}

// Archive 归档排班
func (h *ScheduleHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.ScheduleArchived)
}

func (h *ScheduleHandler) transition(w http.ResponseWriter, r *http.Request, next model.ScheduleStatus) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.scheduleRepo.UpdateStatus(r.Context(), id, next); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(next)})
}

// Coverage 排班覆盖率统计
func (h *ScheduleHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	period, ok := h.loadPeriod(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, stats.AnalyzeCoverage(period))
}

// Workload 排班负荷统计
func (h *ScheduleHandler) Workload(w http.ResponseWriter, r *http.Request) {
	period, ok := h.loadPeriod(w, r)
	if !ok {
		return
	}

	employees, err := h.employeeRepo.ListActive(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats.AnalyzeWorkload(period, employees))
}

// Validate 复核排班结果的冲突
// 人工修改后调用，检测双排、休假冲突等问题。
func (h *ScheduleHandler) Validate(w http.ResponseWriter, r *http.Request) {
	period, ok := h.loadPeriod(w, r)
	if !ok {
		return
	}

	employees, err := h.employeeRepo.List(r.Context(), repository.ListFilter{})
	if err != nil {
		respondError(w, err)
		return
	}
	timeOff, err := h.timeOffRepo.ListOverlapping(r.Context(), period.Range())
	if err != nil {
		respondError(w, err)
		return
	}

	detector := validator.NewConflictDetector(employees, timeOff)
	conflicts := detector.DetectAll(period)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"conflicts": conflicts,
		"valid":     len(conflicts) == 0,
	})
}

// assignmentRequest 人工追加分配请求
type assignmentRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Date       string `json:"date" validate:"required"`
	ShiftType  string `json:"shift_type" validate:"required"`
	Notes      string `json:"notes"`
}

// AddAssignment 向排班周期人工追加一条分配
// 引擎之外的修改入口；追加后应调用 Validate 复核冲突。
func (h *ScheduleHandler) AddAssignment(w http.ResponseWriter, r *http.Request) {
	period, ok := h.loadPeriod(w, r)
	if !ok {
		return
	}

	var req assignmentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		respondError(w, errors.InvalidInput("employee_id", "必须是合法的UUID"))
		return
	}
	if _, err := h.employeeRepo.GetByID(r.Context(), empID); err != nil {
		respondError(w, err)
		return
	}

	shiftType, err := model.ParseShiftType(req.ShiftType)
	if err != nil {
		respondError(w, errors.InvalidInput("shift_type", err.Error()))
		return
	}

	a := &model.ShiftAssignment{
		ScheduleID: period.ID,
		EmployeeID: empID,
		Date:       req.Date,
		ShiftType:  shiftType,
		Notes:      req.Notes,
	}
	if err := h.scheduleRepo.AddAssignment(r.Context(), a); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, a)
}

func (h *ScheduleHandler) loadPeriod(w http.ResponseWriter, r *http.Request) (*model.SchedulePeriod, bool) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return nil, false
	}

	period, err := h.scheduleRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return nil, false
	}
	return period, true
}

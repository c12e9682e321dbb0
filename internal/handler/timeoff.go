// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/internal/repository"
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// TimeOffHandler 休假申请处理器
type TimeOffHandler struct {
	repo    *repository.TimeOffRepository
	empRepo *repository.EmployeeRepository
}

// NewTimeOffHandler 创建休假申请处理器
func NewTimeOffHandler(repo *repository.TimeOffRepository, empRepo *repository.EmployeeRepository) *TimeOffHandler {
	return &TimeOffHandler{repo: repo, empRepo: empRepo}
}

// timeOffRequest 休假申请创建请求
type timeOffRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Type       string `json:"type" validate:"required"`
	Notes      string `json:"notes"`
}

// Create 创建休假申请
func (h *TimeOffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req timeOffRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		respondError(w, errors.InvalidInput("employee_id", "必须是合法的UUID"))
		return
	}
	if _, err := h.empRepo.GetByID(r.Context(), employeeID); err != nil {
		respondError(w, err)
		return
	}

	timeOff, err := model.NewTimeOffRequest(employeeID, req.StartDate, req.EndDate, model.TimeOffType(req.Type))
	if err != nil {
		respondError(w, err)
		return
	}
	timeOff.Notes = req.Notes

	if err := h.repo.Create(r.Context(), timeOff); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, timeOff)
}

// statusRequest 状态更新请求
type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus 审批休假申请
func (h *TimeOffHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	status := model.TimeOffStatus(req.Status)
	if !status.Valid() {
		respondError(w, errors.InvalidInput("status", req.Status))
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, status); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// ListByEmployee 列出员工的休假申请
func (h *TimeOffHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	requests, err := h.repo.ListByEmployee(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

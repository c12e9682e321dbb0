// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zhiban/zhiban/internal/repository"
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// EmployeeHandler 员工处理器
type EmployeeHandler struct {
	repo *repository.EmployeeRepository
}

// NewEmployeeHandler 创建员工处理器
func NewEmployeeHandler(repo *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// employeeRequest 员工创建/更新请求
type employeeRequest struct {
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	HireDate        string   `json:"hire_date" validate:"required"`
	ShiftPreference string   `json:"shift_preference"`
	FixedDaysOff    []int    `json:"fixed_days_off" validate:"omitempty,dive,min=0,max=6"`
	Skills          []string `json:"skills"`
}

// toEmployee 把请求体转成员工模型
func (req *employeeRequest) toEmployee() (*model.Employee, error) {
	if _, err := time.Parse(model.DateFormat, req.HireDate); err != nil {
		return nil, errors.InvalidInput("hire_date", req.HireDate)
	}

	pref := model.ShiftPreference(req.ShiftPreference)
	if req.ShiftPreference == "" {
		pref = model.NoPreference
	}
	if !pref.Valid() {
		return nil, errors.InvalidInput("shift_preference", req.ShiftPreference)
	}

	return &model.Employee{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		HireDate:        req.HireDate,
		ShiftPreference: pref,
		FixedDaysOff:    req.FixedDaysOff,
		Skills:          req.Skills,
		IsActive:        true,
	}, nil
}

// Create 创建员工
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	emp, err := req.toEmployee()
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.repo.Create(r.Context(), emp); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emp)
}

// Get 获取员工
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	emp, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}

// List 列出员工
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.List(r.Context(), listFilter(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

// Update 更新员工
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req employeeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	existing, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	emp, err := req.toEmployee()
	if err != nil {
		respondError(w, err)
		return
	}
	emp.BaseModel = existing.BaseModel
	emp.IsActive = existing.IsActive

	if err := h.repo.Update(r.Context(), emp); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}

// Deactivate 员工离职
func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.repo.Deactivate(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// pathID 解析路径中的 ID 参数
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.InvalidInput("id", "必须是合法的UUID")
	}
	return id, nil
}

// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"

	"github.com/zhiban/zhiban/internal/repository"
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// RuleHandler 排班规则处理器
type RuleHandler struct {
	repo *repository.RuleRepository
}

// NewRuleHandler 创建排班规则处理器
func NewRuleHandler(repo *repository.RuleRepository) *RuleHandler {
	return &RuleHandler{repo: repo}
}

// ruleRequest 规则创建请求
// 参数包的内容按规则类型各异，由规则工厂在入库前校验。
type ruleRequest struct {
	Name       string        `json:"name" validate:"required"`
	RuleType   string        `json:"rule_type" validate:"required"`
	Priority   int           `json:"priority" validate:"required,min=1,max=100"`
	IsActive   *bool         `json:"is_active"`
	Parameters model.JSONMap `json:"parameters" validate:"required"`
}

// Create 创建规则
func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	typ := constraint.Type(req.RuleType)
	if !typ.Valid() {
		respondError(w, errors.InvalidRule(req.RuleType, "未知的规则类型"))
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rec := &repository.RuleRecord{
		Name:       req.Name,
		RuleType:   typ,
		Priority:   req.Priority,
		IsActive:   active,
		Parameters: req.Parameters,
	}

	if err := h.repo.Create(r.Context(), rec); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// List 列出规则
func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// activeRequest 启停请求
type activeRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SetActive 启用或停用规则
func (h *RuleHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req activeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.repo.SetActive(r.Context(), id, *req.IsActive); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"is_active": *req.IsActive})
}

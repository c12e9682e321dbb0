// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/zhiban/zhiban/internal/repository"
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/logger"
)

// validate 请求体校验器
var validate = validator.New()

// maxListLimit 列表单页上限
const maxListLimit = 100

// listFilter 从查询参数解析列表过滤器
// 非法或越界的 limit/offset 一律回落到默认值。
func listFilter(r *http.Request) repository.ListFilter {
	f := repository.DefaultListFilter().WithStatus(r.URL.Query().Get("status"))
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxListLimit {
		f = f.WithLimit(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		f = f.WithOffset(v)
	}
	return f
}

// respondJSON 返回JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// errorResponse 错误响应体
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError 返回错误响应
// 非 AppError 一律按内部错误处理，不向外泄露细节。
func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.GetHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.WithError(err).Msg("请求处理失败")
	}

	message := err.Error()
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
	} else if status >= http.StatusInternalServerError {
		message = "内部错误"
	}

	respondJSON(w, status, errorResponse{Code: string(code), Message: message})
}

// decodeBody 解析并校验请求体
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败")
	}
	if err := validate.Struct(dst); err != nil {
		return errors.Wrap(err, errors.CodeValidationFail, "请求参数校验失败")
	}
	return nil
}

// Package constraint 定义排班规则和分配状态
package constraint

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
)

// MaxShiftsRule 周期内最大班次数规则
type MaxShiftsRule struct {
	BaseRule
	periodDays int
	maxCount   int
}

// NewMaxShiftsRule 创建最大班次数规则
func NewMaxShiftsRule(priority int, active bool, periodDays, maxCount int) (*MaxShiftsRule, error) {
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if periodDays < 1 {
		return nil, errors.InvalidRule(string(TypeMaxShifts), fmt.Sprintf("period_days 必须为正数，收到 %d", periodDays))
	}
	if maxCount < 1 {
		return nil, errors.InvalidRule(string(TypeMaxShifts), fmt.Sprintf("max_count 必须为正数，收到 %d", maxCount))
	}
	return &MaxShiftsRule{
		BaseRule:   NewBaseRule(TypeMaxShifts, priority, active),
		periodDays: periodDays,
		maxCount:   maxCount,
	}, nil
}

// MaxCount 返回允许的最大班次数
func (r *MaxShiftsRule) MaxCount() int { return r.maxCount }

// Description 返回规则描述
func (r *MaxShiftsRule) Description() string {
	return fmt.Sprintf("每 %d 天周期内最多 %d 个班次", r.periodDays, r.maxCount)
}

// Violates 前瞻检查：已有班次数达到上限则拒绝再分配
func (r *MaxShiftsRule) Violates(st *State, employeeID uuid.UUID, _ Slot) bool {
	return st.ShiftCount(employeeID) >= r.maxCount
}

// Violations 整体检查
func (r *MaxShiftsRule) Violations(st *State) []string {
	var out []string
	for _, emp := range st.Employees() {
		if st.ShiftCount(emp.ID) > r.maxCount {
			out = append(out, violationMessage(emp, r.Type()))
		}
	}
	return out
}

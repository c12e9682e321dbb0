// Package constraint 定义排班规则和分配状态
package constraint

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// ConsecutiveDaysOffRule 连续休息天数规则
// 员工在排班窗口内的每个完整 7 天滚动窗口中，必须至少有一段
// 不少于 min_days 天的连续休息；窗口不足 7 天时以整个窗口为准。
type ConsecutiveDaysOffRule struct {
	BaseRule
	minDays int
}

// NewConsecutiveDaysOffRule 创建连续休息天数规则
func NewConsecutiveDaysOffRule(priority int, active bool, minDays int) (*ConsecutiveDaysOffRule, error) {
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if minDays < 1 || minDays > 7 {
		return nil, errors.InvalidRule(string(TypeConsecutiveDaysOff), fmt.Sprintf("min_days 必须在 1-7 之间，收到 %d", minDays))
	}
	return &ConsecutiveDaysOffRule{
		BaseRule: NewBaseRule(TypeConsecutiveDaysOff, priority, active),
		minDays:  minDays,
	}, nil
}

// MinDays 返回要求的最少连续休息天数
func (r *ConsecutiveDaysOffRule) MinDays() int { return r.minDays }

// Description 返回规则描述
func (r *ConsecutiveDaysOffRule) Description() string {
	return fmt.Sprintf("每 7 天滚动窗口内至少连续休息 %d 天", r.minDays)
}

// Violates 前瞻检查：把候选日期并入工作日集合后检查休息要求
func (r *ConsecutiveDaysOffRule) Violates(st *State, employeeID uuid.UUID, slot Slot) bool {
	workDates := st.WorkDates(employeeID)
	workDates[slot.Date] = true
	return !hasRequiredRest(st.Window(), workDates, r.minDays)
}

// Violations 整体检查
func (r *ConsecutiveDaysOffRule) Violations(st *State) []string {
	var out []string
	for _, emp := range st.Employees() {
		if st.ShiftCount(emp.ID) == 0 {
			continue
		}
		if !hasRequiredRest(st.Window(), st.WorkDates(emp.ID), r.minDays) {
			out = append(out, violationMessage(emp, r.Type()))
		}
	}
	return out
}

// hasRequiredRest 检查工作日集合是否满足连续休息要求
// 逐个检查完全落在排班窗口内的 7 天滚动窗口；
// 排班窗口本身不足 7 天时，以整个窗口作为唯一检查窗口。
func hasRequiredRest(window model.DateRange, workDates map[string]bool, minDays int) bool {
	dates := window.Dates()
	if len(dates) == 0 {
		return true
	}

	windowSize := 7
	if len(dates) < windowSize {
		windowSize = len(dates)
	}

	for start := 0; start+windowSize <= len(dates); start++ {
		if longestFreeRun(dates[start:start+windowSize], workDates) < minDays {
			return false
		}
	}
	return true
}

// longestFreeRun 返回日期序列中最长的连续休息天数
func longestFreeRun(dates []string, workDates map[string]bool) int {
	longest, run := 0, 0
	for _, d := range dates {
		if workDates[d] {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Package constraint 定义排班规则和分配状态
package constraint

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
)

// ShiftSpacingRule 班次最小间隔规则
// 同一员工任意两个班次之间的休息时间不得少于 min_hours。
// 间隔按班次的真实起止时刻计算，晚班与次日夜班相邻（零间隔）。
type ShiftSpacingRule struct {
	BaseRule
	minHours int
}

// NewShiftSpacingRule 创建班次最小间隔规则
func NewShiftSpacingRule(priority int, active bool, minHours int) (*ShiftSpacingRule, error) {
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if minHours < 0 {
		return nil, errors.InvalidRule(string(TypeShiftSpacing), fmt.Sprintf("min_hours 不能为负数，收到 %d", minHours))
	}
	return &ShiftSpacingRule{
		BaseRule: NewBaseRule(TypeShiftSpacing, priority, active),
		minHours: minHours,
	}, nil
}

// MinHours 返回要求的最小间隔小时数
func (r *ShiftSpacingRule) MinHours() int { return r.minHours }

// Description 返回规则描述
func (r *ShiftSpacingRule) Description() string {
	return fmt.Sprintf("班次间至少休息 %d 小时", r.minHours)
}

// Violates 前瞻检查：候选班次与员工既有任一班次间隔不足则拒绝
func (r *ShiftSpacingRule) Violates(st *State, employeeID uuid.UUID, slot Slot) bool {
	candStart, candEnd, err := slot.Shift.Interval(slot.Date)
	if err != nil {
		return true
	}

	for _, existing := range st.EmployeeSlots(employeeID) {
		start, end, err := existing.Shift.Interval(existing.Date)
		if err != nil {
			return true
		}
		if gapHours(candStart, candEnd, start, end) < float64(r.minHours) {
			return true
		}
	}
	return false
}

// Violations 整体检查：按起始时刻排序后检查相邻班次的间隔
func (r *ShiftSpacingRule) Violations(st *State) []string {
	var out []string
	for _, emp := range st.Employees() {
		slots := st.EmployeeSlots(emp.ID)
		if len(slots) < 2 {
			continue
		}

		type interval struct {
			start, end time.Time
		}
		intervals := make([]interval, 0, len(slots))
		for _, sl := range slots {
			start, end, err := sl.Shift.Interval(sl.Date)
			if err != nil {
				continue
			}
			intervals = append(intervals, interval{start: start, end: end})
		}
		sort.Slice(intervals, func(i, j int) bool {
			return intervals[i].start.Before(intervals[j].start)
		})

		for i := 0; i+1 < len(intervals); i++ {
			if intervals[i+1].start.Sub(intervals[i].end).Hours() < float64(r.minHours) {
				out = append(out, violationMessage(emp, r.Type()))
				break
			}
		}
	}
	return out
}

// gapHours 计算两个班次区间之间的休息小时数，区间重叠视为零
func gapHours(aStart, aEnd, bStart, bEnd time.Time) float64 {
	switch {
	case !aStart.Before(bEnd):
		return aStart.Sub(bEnd).Hours()
	case !bStart.Before(aEnd):
		return bStart.Sub(aEnd).Hours()
	default:
		return 0
	}
}

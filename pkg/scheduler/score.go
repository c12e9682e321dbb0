// Package scheduler 实现排班生成引擎
package scheduler

import (
	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// 评分权重
// 相对权重表达严格的优先序：覆盖缺口 (100) > 规则违反 (50) >
// 偏好失配 (10)。调整权重会改变优化器的取舍行为。
const (
	unfilledWeight  = 100
	violationWeight = 50
	mismatchWeight  = 10
)

// SchedulingScore 排班质量评分
// 总分越高越好；缺口、失配、违规的任一增加都会降低总分。
type SchedulingScore struct {
	TotalScore           int      `json:"total_score"`
	UnfilledShifts       int      `json:"unfilled_shifts"`
	PreferenceMismatches int      `json:"preference_mismatches"`
	RuleViolations       []string `json:"rule_violations"`
}

// evaluate 对当前分配状态评分
// 纯读取操作：对同一状态重复调用产出相同结果。
func (g *Generator) evaluate(st *constraint.State) SchedulingScore {
	score := SchedulingScore{}

	// 覆盖缺口：每个 (日期, 班次) 相对最低配员的不足量之和
	for _, date := range g.window.Dates() {
		for _, shift := range model.AllShiftTypes {
			slot := constraint.Slot{Date: date, Shift: shift}
			if missing := shift.MinStaff() - st.AssignedCount(slot); missing > 0 {
				score.UnfilledShifts += missing
			}
		}
	}

	// 偏好失配：无偏好的员工不计失配
	for _, emp := range g.employees {
		if emp.ShiftPreference == model.NoPreference {
			continue
		}
		for _, sl := range st.EmployeeSlots(emp.ID) {
			if !emp.ShiftPreference.Matches(sl.Shift) {
				score.PreferenceMismatches++
			}
		}
	}

	// 规则违反：按 (员工, 规则) 维度对既成分配整体检查，
	// 规则按优先级降序报告
	for _, rule := range g.rules {
		if !rule.Active() {
			continue
		}
		score.RuleViolations = append(score.RuleViolations, rule.Violations(st)...)
	}

	score.TotalScore = -(score.UnfilledShifts*unfilledWeight +
		score.PreferenceMismatches*mismatchWeight +
		len(score.RuleViolations)*violationWeight)

	return score
}

// Score 对外暴露的评分入口
// 基于一次生成输出重建状态并评分，供统计或复核使用。
func (g *Generator) Score(period *model.SchedulePeriod) SchedulingScore {
	st := constraint.NewState(g.window, g.employees)
	for _, a := range period.Assignments {
		st.Assign(a.EmployeeID, constraint.Slot{Date: a.Date, Shift: a.ShiftType})
	}
	return g.evaluate(st)
}

// Package stats 提供排班统计分析功能
package stats

import (
	"sort"

	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// CoverageMetrics 覆盖率指标
// 覆盖率按最低配员需求计算，超配不计入（上限 100%）。
type CoverageMetrics struct {
	TotalSlots      int     `json:"total_slots"`      // 需求槽位总数
	AssignedSlots   int     `json:"assigned_slots"`   // 已满足的槽位数
	OverallCoverage float64 `json:"overall_coverage"` // 整体覆盖率 (%)

	DailyCoverage     map[string]DayCoverage `json:"daily_coverage"`      // 每日覆盖情况
	ShiftTypeCoverage map[string]float64     `json:"shift_type_coverage"` // 按班次类型覆盖率 (%)

	UncoveredSlots []UncoveredSlot `json:"uncovered_slots,omitempty"` // 存在缺口的槽位
}

// DayCoverage 每日覆盖情况
type DayCoverage struct {
	Date         string  `json:"date"`
	TotalSlots   int     `json:"total_slots"`
	Assigned     int     `json:"assigned"`
	CoverageRate float64 `json:"coverage_rate"`
	StaffCount   int     `json:"staff_count"` // 当日出勤人数
}

// UncoveredSlot 存在配员缺口的 (日期, 班次)
type UncoveredSlot struct {
	Date      string          `json:"date"`
	ShiftType model.ShiftType `json:"shift_type"`
	Required  int             `json:"required"`
	Assigned  int             `json:"assigned"`
	Shortage  int             `json:"shortage"`
}

// AnalyzeCoverage 分析排班周期的覆盖情况
// 需求以各班次类型的最低配员为基准，与生成引擎的缺口口径一致。
func AnalyzeCoverage(period *model.SchedulePeriod) *CoverageMetrics {
	metrics := &CoverageMetrics{
		DailyCoverage:     make(map[string]DayCoverage),
		ShiftTypeCoverage: make(map[string]float64),
	}

	counts := make(map[constraint.Slot]int)
	staffByDate := make(map[string]map[string]bool)
	for _, a := range period.Assignments {
		counts[constraint.Slot{Date: a.Date, Shift: a.ShiftType}]++
		if staffByDate[a.Date] == nil {
			staffByDate[a.Date] = make(map[string]bool)
		}
		staffByDate[a.Date][a.EmployeeID.String()] = true
	}

	typeRequired := make(map[model.ShiftType]int)
	typeAssigned := make(map[model.ShiftType]int)

	for _, date := range period.Range().Dates() {
		day := DayCoverage{Date: date, StaffCount: len(staffByDate[date])}

		for _, shift := range model.AllShiftTypes {
			required := shift.MinStaff()
			assigned := counts[constraint.Slot{Date: date, Shift: shift}]
			credited := assigned
			if credited > required {
				credited = required
			}

			day.TotalSlots += required
			day.Assigned += credited
			typeRequired[shift] += required
			typeAssigned[shift] += credited

			if assigned < required {
				metrics.UncoveredSlots = append(metrics.UncoveredSlots, UncoveredSlot{
					Date:      date,
					ShiftType: shift,
					Required:  required,
					Assigned:  assigned,
					Shortage:  required - assigned,
				})
			}
		}

		day.CoverageRate = percentage(day.Assigned, day.TotalSlots)
		metrics.DailyCoverage[date] = day
		metrics.TotalSlots += day.TotalSlots
		metrics.AssignedSlots += day.Assigned
	}

	for shift, required := range typeRequired {
		metrics.ShiftTypeCoverage[string(shift)] = percentage(typeAssigned[shift], required)
	}
	metrics.OverallCoverage = percentage(metrics.AssignedSlots, metrics.TotalSlots)

	sort.Slice(metrics.UncoveredSlots, func(i, j int) bool {
		a, b := metrics.UncoveredSlots[i], metrics.UncoveredSlots[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.ShiftType.Order() < b.ShiftType.Order()
	})

	return metrics
}

// percentage 计算百分比，分母为零时视为完全覆盖
func percentage(part, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(part) / float64(total) * 100
}

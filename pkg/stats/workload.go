// Package stats 提供排班统计分析功能
package stats

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// WorkloadMetrics 负荷分布指标
// 基尼系数取值 0-1：0 表示完全均衡，1 表示完全集中。
type WorkloadMetrics struct {
	TotalAssignments int     `json:"total_assignments"`
	AvgShiftsPerEmp  float64 `json:"avg_shifts_per_employee"`
	MaxShifts        int     `json:"max_shifts"`
	MinShifts        int     `json:"min_shifts"`
	ShiftCountGini   float64 `json:"shift_count_gini"`
	NightShiftGini   float64 `json:"night_shift_gini"`

	EmployeeStats []EmployeeWorkload `json:"employee_stats"`
}

// EmployeeWorkload 员工级负荷统计
type EmployeeWorkload struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ShiftCount   int       `json:"shift_count"`
	NightShifts  int       `json:"night_shifts"`
	TotalHours   int       `json:"total_hours"`
}

// AnalyzeWorkload 分析排班周期内的负荷分布
// 未排任何班次的在职员工也计入统计，空闲员工会拉高基尼系数。
func AnalyzeWorkload(period *model.SchedulePeriod, employees []*model.Employee) *WorkloadMetrics {
	metrics := &WorkloadMetrics{}
	if len(employees) == 0 {
		return metrics
	}

	shiftCounts := make(map[uuid.UUID]int)
	nightCounts := make(map[uuid.UUID]int)
	for _, a := range period.Assignments {
		shiftCounts[a.EmployeeID]++
		if a.ShiftType == model.ShiftNight {
			nightCounts[a.EmployeeID]++
		}
		metrics.TotalAssignments++
	}

	counts := make([]float64, 0, len(employees))
	nights := make([]float64, 0, len(employees))
	metrics.MinShifts = math.MaxInt

	for _, emp := range employees {
		n := shiftCounts[emp.ID]
		counts = append(counts, float64(n))
		nights = append(nights, float64(nightCounts[emp.ID]))

		if n > metrics.MaxShifts {
			metrics.MaxShifts = n
		}
		if n < metrics.MinShifts {
			metrics.MinShifts = n
		}

		metrics.EmployeeStats = append(metrics.EmployeeStats, EmployeeWorkload{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			ShiftCount:   n,
			NightShifts:  nightCounts[emp.ID],
			TotalHours:   n * model.ShiftDurationHours,
		})
	}

	metrics.AvgShiftsPerEmp = float64(metrics.TotalAssignments) / float64(len(employees))
	metrics.ShiftCountGini = gini(counts)
	metrics.NightShiftGini = gini(nights)

	sort.Slice(metrics.EmployeeStats, func(i, j int) bool {
		return metrics.EmployeeStats[i].ShiftCount > metrics.EmployeeStats[j].ShiftCount
	})

	return metrics
}

// gini 计算基尼系数
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum, weighted float64
	for i, v := range sorted {
		sum += v
		weighted += float64(i+1) * v
	}
	if sum == 0 {
		return 0
	}

	return (2*weighted)/(float64(n)*sum) - float64(n+1)/float64(n)
}

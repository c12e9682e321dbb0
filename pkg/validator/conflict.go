// Package validator 提供排班结果的冲突检测
//
// 生成引擎在分配阶段已经规避了这些冲突，检测器服务于另一条路径：
// 人工增补或修改排班记录后，落库前复核结果是否仍然自洽。
package validator

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// ConflictType 冲突类型
type ConflictType string

const (
	ConflictDoubleBooking ConflictType = "double_booking" // 同日多个班次
	ConflictTimeOff       ConflictType = "time_off"       // 与已批准休假冲突
	ConflictFixedDayOff   ConflictType = "fixed_day_off"  // 与固定休息日冲突
	ConflictInactive      ConflictType = "inactive"       // 非在职员工
	ConflictUnknown       ConflictType = "unknown"        // 员工不存在
)

// Conflict 冲突信息
type Conflict struct {
	Type       ConflictType `json:"type"`
	EmployeeID uuid.UUID    `json:"employee_id"`
	Date       string       `json:"date"`
	Message    string       `json:"message"`
}

// ConflictDetector 冲突检测器
type ConflictDetector struct {
	employees map[uuid.UUID]*model.Employee
	timeOff   []*model.TimeOffRequest
}

// NewConflictDetector 创建冲突检测器
func NewConflictDetector(employees []*model.Employee, timeOff []*model.TimeOffRequest) *ConflictDetector {
	byID := make(map[uuid.UUID]*model.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}
	return &ConflictDetector{employees: byID, timeOff: timeOff}
}

// DetectAll 检测排班周期内的全部冲突
// 输出按 (日期, 员工) 排序，便于稳定对比。
func (d *ConflictDetector) DetectAll(period *model.SchedulePeriod) []Conflict {
	var conflicts []Conflict

	type empDay struct {
		emp  uuid.UUID
		date string
	}
	seen := make(map[empDay]int)

	for i := range period.Assignments {
		a := &period.Assignments[i]
		conflicts = append(conflicts, d.check(a)...)

		key := empDay{emp: a.EmployeeID, date: a.Date}
		seen[key]++
		if seen[key] == 2 {
			emp := d.employees[a.EmployeeID]
			name := a.EmployeeID.String()
			if emp != nil {
				name = emp.FullName()
			}
			conflicts = append(conflicts, Conflict{
				Type:       ConflictDoubleBooking,
				EmployeeID: a.EmployeeID,
				Date:       a.Date,
				Message:    fmt.Sprintf("%s 在 %s 有多个班次", name, a.Date),
			})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Date != conflicts[j].Date {
			return conflicts[i].Date < conflicts[j].Date
		}
		return conflicts[i].EmployeeID.String() < conflicts[j].EmployeeID.String()
	})
	return conflicts
}

// check 检测单条分配记录的员工侧冲突
func (d *ConflictDetector) check(a *model.ShiftAssignment) []Conflict {
	emp, ok := d.employees[a.EmployeeID]
	if !ok {
		return []Conflict{{
			Type:       ConflictUnknown,
			EmployeeID: a.EmployeeID,
			Date:       a.Date,
			Message:    fmt.Sprintf("员工 %s 不存在", a.EmployeeID),
		}}
	}

	var conflicts []Conflict
	if !emp.IsActive {
		conflicts = append(conflicts, Conflict{
			Type:       ConflictInactive,
			EmployeeID: emp.ID,
			Date:       a.Date,
			Message:    fmt.Sprintf("%s 已离职，不能排班", emp.FullName()),
		})
	}

	if emp.HasFixedDayOff(model.WeekdayIndex(a.Date)) {
		conflicts = append(conflicts, Conflict{
			Type:       ConflictFixedDayOff,
			EmployeeID: emp.ID,
			Date:       a.Date,
			Message:    fmt.Sprintf("%s 在 %s 为固定休息日", emp.FullName(), a.Date),
		})
	}

	for _, req := range d.timeOff {
		if req.EmployeeID == emp.ID && req.IsApproved() && req.Covers(a.Date) {
			conflicts = append(conflicts, Conflict{
				Type:       ConflictTimeOff,
				EmployeeID: emp.ID,
				Date:       a.Date,
				Message:    fmt.Sprintf("%s 在 %s 有已批准的休假", emp.FullName(), a.Date),
			})
			break
		}
	}

	return conflicts
}

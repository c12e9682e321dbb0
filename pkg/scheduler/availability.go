// Package scheduler 实现排班生成引擎
package scheduler

import (
	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// availabilityKey 可用性映射的键：(日期, 员工)
type availabilityKey struct {
	date       string
	employeeID uuid.UUID
}

// availabilityMap 可用性映射
// 每次生成运行开始时重建一次，运行结束即丢弃，从不持久化。
type availabilityMap map[availabilityKey]bool

// available 检查员工在指定日期是否可用
// 非在职员工不在映射中，查询结果恒为不可用。
func (m availabilityMap) available(date string, employeeID uuid.UUID) bool {
	return m[availabilityKey{date: date, employeeID: employeeID}]
}

// buildAvailability 构建可用性映射
// 先把所有 (日期, 在职员工) 初始化为可用，再依次套用两类不可用来源：
// 已批准的休假申请、固定周休息日。两类标记无条件生效，
// 后写入的标记不会把日期恢复为可用。
func buildAvailability(window model.DateRange, employees []*model.Employee, timeOff []*model.TimeOffRequest) availabilityMap {
	avail := make(availabilityMap)
	dates := window.Dates()

	for _, date := range dates {
		for _, emp := range employees {
			if !emp.IsActive {
				continue
			}
			avail[availabilityKey{date: date, employeeID: emp.ID}] = true
		}
	}

	// 已批准的休假区间整段标记为不可用
	for _, req := range timeOff {
		if !req.IsApproved() {
			continue
		}
		for _, date := range dates {
			if req.Covers(date) {
				avail[availabilityKey{date: date, employeeID: req.EmployeeID}] = false
			}
		}
	}

	// 固定周休息日标记为不可用
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		for _, date := range dates {
			if emp.HasFixedDayOff(model.WeekdayIndex(date)) {
				avail[availabilityKey{date: date, employeeID: emp.ID}] = false
			}
		}
	}

	return avail
}

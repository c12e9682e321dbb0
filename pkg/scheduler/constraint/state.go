// Package constraint 定义排班规则和分配状态
package constraint

import (
	"sort"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// State 分配状态
// 维护两份互为镜像的映射：槽位 -> 员工列表、员工 -> 槽位列表，
// 每次变更同时更新两边。状态归单次生成运行独占，运行结束即丢弃。
type State struct {
	window      model.DateRange
	employees   []*model.Employee
	employeeMap map[uuid.UUID]*model.Employee

	bySlot     map[Slot][]uuid.UUID
	byEmployee map[uuid.UUID][]Slot
}

// NewState 创建分配状态
func NewState(window model.DateRange, employees []*model.Employee) *State {
	st := &State{
		window:      window,
		employees:   employees,
		employeeMap: make(map[uuid.UUID]*model.Employee, len(employees)),
		bySlot:      make(map[Slot][]uuid.UUID),
		byEmployee:  make(map[uuid.UUID][]Slot),
	}
	for _, e := range employees {
		st.employeeMap[e.ID] = e
	}
	return st
}

// Window 返回排班窗口
func (s *State) Window() model.DateRange {
	return s.window
}

// Employees 返回员工列表（按输入顺序）
func (s *State) Employees() []*model.Employee {
	return s.employees
}

// Employee 按 ID 获取员工
func (s *State) Employee(id uuid.UUID) *model.Employee {
	return s.employeeMap[id]
}

// Assign 将槽位分配给员工
func (s *State) Assign(employeeID uuid.UUID, slot Slot) {
	s.bySlot[slot] = append(s.bySlot[slot], employeeID)
	s.byEmployee[employeeID] = append(s.byEmployee[employeeID], slot)
}

// Unassign 撤销员工在槽位上的分配
// 返回是否实际撤销了一条分配。
func (s *State) Unassign(employeeID uuid.UUID, slot Slot) bool {
	ids := s.bySlot[slot]
	found := false
	for i, id := range ids {
		if id == employeeID {
			s.bySlot[slot] = append(ids[:i], ids[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	slots := s.byEmployee[employeeID]
	for i, sl := range slots {
		if sl == slot {
			s.byEmployee[employeeID] = append(slots[:i], slots[i+1:]...)
			break
		}
	}
	return true
}

// Assigned 返回槽位上已分配的员工（按分配顺序）
func (s *State) Assigned(slot Slot) []uuid.UUID {
	return s.bySlot[slot]
}

// AssignedCount 返回槽位上已分配的人数
func (s *State) AssignedCount(slot Slot) int {
	return len(s.bySlot[slot])
}

// EmployeeSlots 返回员工当前的全部班次
func (s *State) EmployeeSlots(employeeID uuid.UUID) []Slot {
	return s.byEmployee[employeeID]
}

// ShiftCount 返回员工当前已分配的班次数
func (s *State) ShiftCount(employeeID uuid.UUID) int {
	return len(s.byEmployee[employeeID])
}

// HasShiftOn 检查员工在指定日期是否已有班次
func (s *State) HasShiftOn(employeeID uuid.UUID, date string) bool {
	for _, sl := range s.byEmployee[employeeID] {
		if sl.Date == date {
			return true
		}
	}
	return false
}

// WorkDates 返回员工当前的工作日期集合
func (s *State) WorkDates(employeeID uuid.UUID) map[string]bool {
	dates := make(map[string]bool, len(s.byEmployee[employeeID]))
	for _, sl := range s.byEmployee[employeeID] {
		dates[sl.Date] = true
	}
	return dates
}

// SlotKeys 返回当前有分配的槽位（排序后）
// 排序保证遍历顺序可复现。
func (s *State) SlotKeys() []Slot {
	keys := make([]Slot, 0, len(s.bySlot))
	for k, ids := range s.bySlot {
		if len(ids) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// TotalAssignments 返回总分配数
func (s *State) TotalAssignments() int {
	total := 0
	for _, ids := range s.bySlot {
		total += len(ids)
	}
	return total
}

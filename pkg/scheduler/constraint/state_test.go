package constraint

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// testEmployee 构造测试员工
func testEmployee(first, last string) *model.Employee {
	return &model.Employee{
		BaseModel:       model.NewBaseModel(),
		FirstName:       first,
		LastName:        last,
		ShiftPreference: model.NoPreference,
		IsActive:        true,
	}
}

func testWindow() model.DateRange {
	return model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-11"}
}

func TestState_AssignUnassign(t *testing.T) {
	emp := testEmployee("Alice", "Wang")
	st := NewState(testWindow(), []*model.Employee{emp})

	slot := Slot{Date: "2026-01-05", Shift: model.ShiftNight}
	st.Assign(emp.ID, slot)

	if st.AssignedCount(slot) != 1 {
		t.Errorf("Expected 1 assignment, got %d", st.AssignedCount(slot))
	}
	if st.ShiftCount(emp.ID) != 1 {
		t.Errorf("Expected 1 shift for employee, got %d", st.ShiftCount(emp.ID))
	}
	if !st.HasShiftOn(emp.ID, "2026-01-05") {
		t.Error("Expected employee to have a shift on 2026-01-05")
	}

	if !st.Unassign(emp.ID, slot) {
		t.Error("Expected unassign to succeed")
	}
	if st.AssignedCount(slot) != 0 || st.ShiftCount(emp.ID) != 0 {
		t.Error("Expected both mappings cleared after unassign")
	}

	// 重复撤销返回 false
	if st.Unassign(emp.ID, slot) {
		t.Error("Expected unassign of missing assignment to return false")
	}
}

func TestState_MirrorConsistency(t *testing.T) {
	emp1 := testEmployee("Alice", "Wang")
	emp2 := testEmployee("Bob", "Li")
	st := NewState(testWindow(), []*model.Employee{emp1, emp2})

	slot1 := Slot{Date: "2026-01-05", Shift: model.ShiftNight}
	slot2 := Slot{Date: "2026-01-06", Shift: model.ShiftDay}
	st.Assign(emp1.ID, slot1)
	st.Assign(emp2.ID, slot1)
	st.Assign(emp1.ID, slot2)

	if st.TotalAssignments() != 3 {
		t.Errorf("Expected 3 total assignments, got %d", st.TotalAssignments())
	}
	if got := len(st.Assigned(slot1)); got != 2 {
		t.Errorf("Expected 2 employees on slot1, got %d", got)
	}
	if got := len(st.EmployeeSlots(emp1.ID)); got != 2 {
		t.Errorf("Expected 2 slots for emp1, got %d", got)
	}

	dates := st.WorkDates(emp1.ID)
	if !dates["2026-01-05"] || !dates["2026-01-06"] {
		t.Error("Expected both work dates present")
	}
}

func TestState_SlotKeysSorted(t *testing.T) {
	emp := testEmployee("Alice", "Wang")
	st := NewState(testWindow(), []*model.Employee{emp})

	// 乱序分配
	st.Assign(emp.ID, Slot{Date: "2026-01-07", Shift: model.ShiftDay})
	st.Assign(emp.ID, Slot{Date: "2026-01-05", Shift: model.ShiftEvening})
	st.Assign(emp.ID, Slot{Date: "2026-01-05", Shift: model.ShiftNight})

	keys := st.SlotKeys()
	if len(keys) != 3 {
		t.Fatalf("Expected 3 slot keys, got %d", len(keys))
	}
	want := []Slot{
		{Date: "2026-01-05", Shift: model.ShiftNight},
		{Date: "2026-01-05", Shift: model.ShiftEvening},
		{Date: "2026-01-07", Shift: model.ShiftDay},
	}
	for i, k := range keys {
		if k != want[i] {
			t.Errorf("SlotKeys[%d] = %v, want %v", i, k, want[i])
		}
	}

	// 清空后的槽位不出现在键列表中
	st.Unassign(emp.ID, Slot{Date: "2026-01-07", Shift: model.ShiftDay})
	if got := len(st.SlotKeys()); got != 2 {
		t.Errorf("Expected 2 slot keys after unassign, got %d", got)
	}
}

func TestState_Employee(t *testing.T) {
	emp := testEmployee("Alice", "Wang")
	st := NewState(testWindow(), []*model.Employee{emp})

	if st.Employee(emp.ID) != emp {
		t.Error("Expected lookup to return the employee")
	}
	if st.Employee(uuid.New()) != nil {
		t.Error("Expected nil for unknown employee ID")
	}
}

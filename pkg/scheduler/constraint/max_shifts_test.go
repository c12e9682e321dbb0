package constraint

import (
	"testing"

	"github.com/zhiban/zhiban/pkg/model"
)

func TestNewMaxShiftsRule_Validation(t *testing.T) {
	if _, err := NewMaxShiftsRule(50, true, 7, 5); err != nil {
		t.Errorf("Expected valid params to pass, got %v", err)
	}
	if _, err := NewMaxShiftsRule(50, true, 0, 5); err == nil {
		t.Error("Expected error for non-positive period_days")
	}
	if _, err := NewMaxShiftsRule(50, true, 7, 0); err == nil {
		t.Error("Expected error for non-positive max_count")
	}
	if _, err := NewMaxShiftsRule(101, true, 7, 5); err == nil {
		t.Error("Expected error for out-of-range priority")
	}
}

func TestMaxShiftsRule_Violates(t *testing.T) {
	rule, err := NewMaxShiftsRule(50, true, 7, 2)
	if err != nil {
		t.Fatalf("NewMaxShiftsRule failed: %v", err)
	}

	emp := testEmployee("Alice", "Wang")
	st := NewState(testWindow(), []*model.Employee{emp})
	slot := Slot{Date: "2026-01-07", Shift: model.ShiftDay}

	if rule.Violates(st, emp.ID, slot) {
		t.Error("Expected empty schedule to accept a shift")
	}

	st.Assign(emp.ID, Slot{Date: "2026-01-05", Shift: model.ShiftDay})
	if rule.Violates(st, emp.ID, slot) {
		t.Error("Expected one existing shift to accept a second")
	}

	st.Assign(emp.ID, Slot{Date: "2026-01-06", Shift: model.ShiftDay})
	// 已达上限，再分配即违反
	if !rule.Violates(st, emp.ID, slot) {
		t.Error("Expected shift at the cap to be rejected")
	}
}

func TestMaxShiftsRule_Violations(t *testing.T) {
	rule, _ := NewMaxShiftsRule(50, true, 7, 1)

	over := testEmployee("Alice", "Wang")
	at := testEmployee("Bob", "Li")
	st := NewState(testWindow(), []*model.Employee{over, at})

	st.Assign(over.ID, Slot{Date: "2026-01-05", Shift: model.ShiftDay})
	st.Assign(over.ID, Slot{Date: "2026-01-06", Shift: model.ShiftDay})
	st.Assign(at.ID, Slot{Date: "2026-01-05", Shift: model.ShiftNight})

	violations := rule.Violations(st)
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d: %v", len(violations), violations)
	}
	if violations[0] != "Employee Alice Wang violates max_shifts" {
		t.Errorf("Unexpected violation message: %q", violations[0])
	}
}

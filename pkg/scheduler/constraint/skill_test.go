package constraint

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

func TestNewSkillRequirementRule_Validation(t *testing.T) {
	if _, err := NewSkillRequirementRule(50, true, model.ShiftNight, []string{"icu"}); err != nil {
		t.Errorf("Expected valid params to pass, got %v", err)
	}
	if _, err := NewSkillRequirementRule(50, true, "morning", []string{"icu"}); err == nil {
		t.Error("Expected error for unknown shift type")
	}
	if _, err := NewSkillRequirementRule(50, true, model.ShiftNight, nil); err == nil {
		t.Error("Expected error for empty skill list")
	}
}

func TestSkillRequirementRule_Violations(t *testing.T) {
	rule, err := NewSkillRequirementRule(50, true, model.ShiftNight, []string{"icu", "triage"})
	if err != nil {
		t.Fatalf("NewSkillRequirementRule failed: %v", err)
	}

	qualified := testEmployee("Alice", "Wang")
	qualified.Skills = []string{"icu", "triage"}
	partial := testEmployee("Bob", "Li")
	partial.Skills = []string{"icu"}
	unrelated := testEmployee("Carol", "Zhao")

	st := NewState(testWindow(), []*model.Employee{qualified, partial, unrelated})
	st.Assign(qualified.ID, Slot{Date: "2026-01-05", Shift: model.ShiftNight})
	st.Assign(partial.ID, Slot{Date: "2026-01-05", Shift: model.ShiftNight})
	// Carol 没排夜班，不受该规则约束
	st.Assign(unrelated.ID, Slot{Date: "2026-01-05", Shift: model.ShiftDay})

	violations := rule.Violations(st)
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d: %v", len(violations), violations)
	}
	if violations[0] != "Employee Bob Li violates skill" {
		t.Errorf("Unexpected violation message: %q", violations[0])
	}

	// 技能缺口不阻断分配
	if rule.Violates(st, partial.ID, Slot{Date: "2026-01-06", Shift: model.ShiftNight}) {
		t.Error("Expected skill rule not to block assignment")
	}
}

func TestMinStaffRule(t *testing.T) {
	rule, err := NewMinStaffRule(90, true, model.ShiftNight, 4)
	if err != nil {
		t.Fatalf("NewMinStaffRule failed: %v", err)
	}
	if _, err := NewMinStaffRule(90, true, model.ShiftNight, 0); err == nil {
		t.Error("Expected error for non-positive min_count")
	}

	// 配员缺口不针对单个员工：前瞻和整体检查都不产出
	st := NewState(testWindow(), nil)
	if rule.Violates(st, uuid.New(), Slot{Date: "2026-01-05", Shift: model.ShiftNight}) {
		t.Error("Expected min-staff rule never to block assignment")
	}
	if got := rule.Violations(st); got != nil {
		t.Errorf("Expected no per-employee violations, got %v", got)
	}
}

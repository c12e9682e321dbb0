package scheduler

import (
	"reflect"
	"testing"

	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

func TestScore_PerfectSchedule(t *testing.T) {
	window := model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-05"}
	staff := newStaff(9)
	g, err := NewGenerator(window, staff, nil, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	period, _ := g.Generate()
	score := g.Score(period)

	if score.TotalScore != 0 {
		t.Errorf("Expected perfect score 0, got %d", score.TotalScore)
	}
	if score.UnfilledShifts != 0 || score.PreferenceMismatches != 0 || len(score.RuleViolations) != 0 {
		t.Errorf("Expected clean score breakdown, got %+v", score)
	}
}

func TestScore_Weights(t *testing.T) {
	// 手工构造一个已知缺口和失配的排班，验证权重计算
	window := model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-05"}
	staff := newStaff(2)
	staff[0].ShiftPreference = model.PreferDay

	g, err := NewGenerator(window, staff, nil, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	// 只排 2 人：夜班 1 人（偏好白班，失配）、白班 1 人
	period := &model.SchedulePeriod{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Status:    model.ScheduleDraft,
		Assignments: []model.ShiftAssignment{
			{EmployeeID: staff[0].ID, Date: "2026-01-05", ShiftType: model.ShiftNight},
			{EmployeeID: staff[1].ID, Date: "2026-01-05", ShiftType: model.ShiftDay},
		},
	}

	score := g.Score(period)

	// 缺口：夜班缺 3、晚班缺 4
	if score.UnfilledShifts != 7 {
		t.Errorf("UnfilledShifts = %d, want 7", score.UnfilledShifts)
	}
	if score.PreferenceMismatches != 1 {
		t.Errorf("PreferenceMismatches = %d, want 1", score.PreferenceMismatches)
	}
	// -(7*100 + 1*10) = -710
	if score.TotalScore != -710 {
		t.Errorf("TotalScore = %d, want -710", score.TotalScore)
	}
}

func TestScore_ViolationWeight(t *testing.T) {
	window := model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-06"}
	staff := newStaff(1)

	rule, err := constraint.NewMaxShiftsRule(50, true, 7, 1)
	if err != nil {
		t.Fatalf("NewMaxShiftsRule failed: %v", err)
	}
	g, err := NewGenerator(window, staff, []constraint.Rule{rule}, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	// 同一员工两天各一个班次，超出 max_count=1
	period := &model.SchedulePeriod{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Assignments: []model.ShiftAssignment{
			{EmployeeID: staff[0].ID, Date: "2026-01-05", ShiftType: model.ShiftDay},
			{EmployeeID: staff[0].ID, Date: "2026-01-06", ShiftType: model.ShiftDay},
		},
	}

	score := g.Score(period)
	if len(score.RuleViolations) != 1 {
		t.Fatalf("Expected 1 violation, got %v", score.RuleViolations)
	}
	if score.RuleViolations[0] != "Employee Emp00 Test violates max_shifts" {
		t.Errorf("Unexpected violation message: %q", score.RuleViolations[0])
	}
	// 缺口 16（两天共 18 槽减去 2 个分配），违规 1
	want := -(16*100 + 1*50)
	if score.TotalScore != want {
		t.Errorf("TotalScore = %d, want %d", score.TotalScore, want)
	}
}

func TestScore_NoPreferenceNeverMismatches(t *testing.T) {
	window := model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-05"}
	staff := newStaff(1) // 无偏好

	g, _ := NewGenerator(window, staff, nil, nil)
	period := &model.SchedulePeriod{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		Assignments: []model.ShiftAssignment{
			{EmployeeID: staff[0].ID, Date: "2026-01-05", ShiftType: model.ShiftNight},
		},
	}

	if score := g.Score(period); score.PreferenceMismatches != 0 {
		t.Errorf("Expected no mismatch for NoPreference, got %d", score.PreferenceMismatches)
	}
}

func TestScore_Idempotent(t *testing.T) {
	window := model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-06"}
	staff := newStaff(6)
	staff[1].ShiftPreference = model.PreferEvening

	g, err := NewGenerator(window, staff, nil, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	period, _ := g.Generate()

	first := g.Score(period)
	second := g.Score(period)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical scores, got %+v vs %+v", first, second)
	}
}

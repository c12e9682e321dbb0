package scheduler

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// newTestEmployee 构造测试员工
func newTestEmployee(first, last string, pref model.ShiftPreference) *model.Employee {
	return &model.Employee{
		BaseModel:       model.NewBaseModel(),
		FirstName:       first,
		LastName:        last,
		ShiftPreference: pref,
		IsActive:        true,
	}
}

func weekWindow() model.DateRange {
	// 2026-01-05 是周一
	return model.DateRange{StartDate: "2026-01-05", EndDate: "2026-01-11"}
}

func TestBuildAvailability_DefaultAvailable(t *testing.T) {
	emp := newTestEmployee("Alice", "Wang", model.NoPreference)
	avail := buildAvailability(weekWindow(), []*model.Employee{emp}, nil)

	for _, date := range weekWindow().Dates() {
		if !avail.available(date, emp.ID) {
			t.Errorf("Expected %s to be available by default", date)
		}
	}
}

func TestBuildAvailability_ApprovedTimeOff(t *testing.T) {
	emp := newTestEmployee("Alice", "Wang", model.NoPreference)

	approved := &model.TimeOffRequest{
		EmployeeID: emp.ID,
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-08",
		Status:     model.TimeOffApproved,
	}
	pending := &model.TimeOffRequest{
		EmployeeID: emp.ID,
		StartDate:  "2026-01-10",
		EndDate:    "2026-01-10",
		Status:     model.TimeOffPending,
	}

	avail := buildAvailability(weekWindow(), []*model.Employee{emp}, []*model.TimeOffRequest{approved, pending})

	// 已批准区间整段不可用
	for _, date := range []string{"2026-01-06", "2026-01-07", "2026-01-08"} {
		if avail.available(date, emp.ID) {
			t.Errorf("Expected %s to be blocked by approved time off", date)
		}
	}
	// 未批准的申请不影响可用性
	if !avail.available("2026-01-10", emp.ID) {
		t.Error("Expected pending request not to block availability")
	}
	if !avail.available("2026-01-05", emp.ID) {
		t.Error("Expected dates outside the request to stay available")
	}
}

func TestBuildAvailability_FixedDaysOff(t *testing.T) {
	emp := newTestEmployee("Alice", "Wang", model.NoPreference)
	emp.FixedDaysOff = []int{5, 6} // 周六、周日

	avail := buildAvailability(weekWindow(), []*model.Employee{emp}, nil)

	if avail.available("2026-01-10", emp.ID) || avail.available("2026-01-11", emp.ID) {
		t.Error("Expected weekend to be blocked by fixed days off")
	}
	if !avail.available("2026-01-05", emp.ID) {
		t.Error("Expected weekday to stay available")
	}
}

func TestBuildAvailability_InactiveEmployee(t *testing.T) {
	emp := newTestEmployee("Alice", "Wang", model.NoPreference)
	emp.IsActive = false

	avail := buildAvailability(weekWindow(), []*model.Employee{emp}, nil)
	for _, date := range weekWindow().Dates() {
		if avail.available(date, emp.ID) {
			t.Errorf("Expected inactive employee to be unavailable on %s", date)
		}
	}
}

func TestBuildAvailability_UnknownEmployee(t *testing.T) {
	avail := buildAvailability(weekWindow(), nil, nil)
	if avail.available("2026-01-05", uuid.New()) {
		t.Error("Expected unknown employee to be unavailable")
	}
}

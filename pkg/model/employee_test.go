package model

import "testing"

func TestShiftPreference_Matches(t *testing.T) {
	tests := []struct {
		pref  ShiftPreference
		shift ShiftType
		want  bool
	}{
		{PreferNight, ShiftNight, true},
		{PreferNight, ShiftDay, false},
		{PreferDay, ShiftDay, true},
		{PreferEvening, ShiftEvening, true},
		// 无偏好不命中任何班次
		{NoPreference, ShiftNight, false},
		{NoPreference, ShiftEvening, false},
		{NoPreference, ShiftDay, false},
	}

	for _, tt := range tests {
		if got := tt.pref.Matches(tt.shift); got != tt.want {
			t.Errorf("%s.Matches(%s) = %v, want %v", tt.pref, tt.shift, got, tt.want)
		}
	}
}

func TestShiftPreference_Valid(t *testing.T) {
	for _, p := range []ShiftPreference{PreferNight, PreferEvening, PreferDay, NoPreference} {
		if !p.Valid() {
			t.Errorf("Expected %s to be valid", p)
		}
	}
	if ShiftPreference("weekend").Valid() {
		t.Error("Expected unknown preference to be invalid")
	}
}

func TestEmployee_FullName(t *testing.T) {
	emp := &Employee{FirstName: "Alice", LastName: "Wang"}
	if got := emp.FullName(); got != "Alice Wang" {
		t.Errorf("FullName() = %q", got)
	}
}

func TestEmployee_HasFixedDayOff(t *testing.T) {
	emp := &Employee{FixedDaysOff: []int{5, 6}} // 周六、周日
	if !emp.HasFixedDayOff(5) || !emp.HasFixedDayOff(6) {
		t.Error("Expected weekend to be fixed days off")
	}
	if emp.HasFixedDayOff(0) {
		t.Error("Expected Monday not to be a fixed day off")
	}

	none := &Employee{}
	if none.HasFixedDayOff(0) {
		t.Error("Expected employee without fixed days off to work any weekday")
	}
}

func TestEmployee_HasSkill(t *testing.T) {
	emp := &Employee{Skills: []string{"icu", "triage"}}
	if !emp.HasSkill("icu") {
		t.Error("Expected employee to have icu skill")
	}
	if emp.HasSkill("surgery") {
		t.Error("Expected employee not to have surgery skill")
	}
}

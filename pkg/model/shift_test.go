package model

import (
	"testing"
	"time"
)

func TestShiftType_MinStaff(t *testing.T) {
	tests := []struct {
		shift ShiftType
		want  int
	}{
		{ShiftNight, 4},
		{ShiftEvening, 4},
		{ShiftDay, 1},
	}

	for _, tt := range tests {
		if got := tt.shift.MinStaff(); got != tt.want {
			t.Errorf("%s.MinStaff() = %d, want %d", tt.shift, got, tt.want)
		}
	}
}

func TestShiftType_Valid(t *testing.T) {
	for _, s := range AllShiftTypes {
		if !s.Valid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if ShiftType("morning").Valid() {
		t.Error("Expected unknown shift type to be invalid")
	}
}

func TestShiftType_Interval(t *testing.T) {
	// 夜班从零点开始
	start, end, err := ShiftNight.Interval("2026-01-05")
	if err != nil {
		t.Fatalf("Interval failed: %v", err)
	}
	if start.Hour() != 0 || end.Hour() != 8 {
		t.Errorf("Night interval = %v..%v, want 00:00..08:00", start, end)
	}

	// 晚班结束于次日零点
	start, end, err = ShiftEvening.Interval("2026-01-05")
	if err != nil {
		t.Fatalf("Interval failed: %v", err)
	}
	if start.Hour() != 16 {
		t.Errorf("Evening starts at %d, want 16", start.Hour())
	}
	if end.Day() != 6 || end.Hour() != 0 {
		t.Errorf("Evening ends at %v, want next-day midnight", end)
	}

	// 晚班与次日夜班紧邻，间隔为零
	nextStart, _, err := ShiftNight.Interval("2026-01-06")
	if err != nil {
		t.Fatalf("Interval failed: %v", err)
	}
	if gap := nextStart.Sub(end); gap != 0 {
		t.Errorf("Gap between evening and next night = %v, want 0", gap)
	}

	// 所有班次固定 8 小时
	for _, s := range AllShiftTypes {
		start, end, err := s.Interval("2026-01-05")
		if err != nil {
			t.Fatalf("Interval failed for %s: %v", s, err)
		}
		if end.Sub(start) != ShiftDurationHours*time.Hour {
			t.Errorf("%s duration = %v, want 8h", s, end.Sub(start))
		}
	}

	if _, _, err := ShiftNight.Interval("not-a-date"); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestParseShiftType(t *testing.T) {
	for _, s := range []string{"night", "evening", "day"} {
		st, err := ParseShiftType(s)
		if err != nil {
			t.Errorf("ParseShiftType(%s) failed: %v", s, err)
		}
		if string(st) != s {
			t.Errorf("ParseShiftType(%s) = %s", s, st)
		}
	}
	if _, err := ParseShiftType("graveyard"); err == nil {
		t.Error("Expected error for unknown shift type")
	}
}

func TestAllShiftTypesOrder(t *testing.T) {
	// 遍历顺序固定：夜班、晚班、白班
	want := []ShiftType{ShiftNight, ShiftEvening, ShiftDay}
	for i, s := range want {
		if AllShiftTypes[i] != s {
			t.Errorf("AllShiftTypes[%d] = %s, want %s", i, AllShiftTypes[i], s)
		}
		if s.Order() != i {
			t.Errorf("%s.Order() = %d, want %d", s, s.Order(), i)
		}
	}
}

// Package model 定义排班系统的核心数据模型
package model

import (
	"fmt"
	"time"
)

// ShiftType 班次类型
type ShiftType string

const (
	ShiftNight   ShiftType = "night"   // 夜班 00:00-08:00
	ShiftEvening ShiftType = "evening" // 晚班 16:00-24:00
	ShiftDay     ShiftType = "day"     // 白班 08:00-16:00
)

// AllShiftTypes 全部班次类型（固定顺序：夜班、晚班、白班）
// 需求生成和槽位遍历都按该顺序进行，保证生成结果可复现。
var AllShiftTypes = []ShiftType{ShiftNight, ShiftEvening, ShiftDay}

// minStaffTable 各班次类型的最低配员人数
var minStaffTable = map[ShiftType]int{
	ShiftNight:   4,
	ShiftEvening: 4,
	ShiftDay:     1,
}

// startHourTable 各班次类型的起始小时（班次固定为 8 小时）
var startHourTable = map[ShiftType]int{
	ShiftNight:   0,
	ShiftDay:     8,
	ShiftEvening: 16,
}

// ShiftDurationHours 班次时长（小时）
const ShiftDurationHours = 8

// Valid 检查班次类型是否合法
func (s ShiftType) Valid() bool {
	_, ok := minStaffTable[s]
	return ok
}

// MinStaff 返回班次类型的最低配员人数
// 该值是类型的固定属性，运行期不会变化。
func (s ShiftType) MinStaff() int {
	return minStaffTable[s]
}

// Order 返回班次类型的遍历序号
func (s ShiftType) Order() int {
	for i, t := range AllShiftTypes {
		if t == s {
			return i
		}
	}
	return len(AllShiftTypes)
}

// Interval 返回班次在指定日期的起止时刻
// 晚班结束于次日零点，因此晚班与次日夜班的间隔为零小时。
func (s ShiftType) Interval(date string) (start, end time.Time, err error) {
	day, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("无效的班次日期 %q: %w", date, err)
	}
	hour, ok := startHourTable[s]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("未知的班次类型 %q", s)
	}
	start = day.Add(time.Duration(hour) * time.Hour)
	end = start.Add(ShiftDurationHours * time.Hour)
	return start, end, nil
}

// ParseShiftType 解析班次类型字符串
func ParseShiftType(s string) (ShiftType, error) {
	st := ShiftType(s)
	if !st.Valid() {
		return "", fmt.Errorf("未知的班次类型 %q", s)
	}
	return st, nil
}

// Package model 定义排班系统的核心数据模型
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateFormat 系统统一的日期格式
const DateFormat = "2006-01-02"

// BaseModel 基础模型（包含通用字段）
type BaseModel struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// NewBaseModel 创建新的基础模型
func NewBaseModel() BaseModel {
	now := time.Now()
	return BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// JSONMap 用于存储 JSONB 数据
type JSONMap map[string]interface{}

// DateRange 日期范围（两端均为闭区间）
type DateRange struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

// Validate 校验日期范围：格式合法且 start <= end
func (r DateRange) Validate() error {
	start, err := time.Parse(DateFormat, r.StartDate)
	if err != nil {
		return fmt.Errorf("无效的开始日期 %q: %w", r.StartDate, err)
	}
	end, err := time.Parse(DateFormat, r.EndDate)
	if err != nil {
		return fmt.Errorf("无效的结束日期 %q: %w", r.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("结束日期 %s 早于开始日期 %s", r.EndDate, r.StartDate)
	}
	return nil
}

// Dates 枚举范围内的所有日期（升序）
func (r DateRange) Dates() []string {
	start, err1 := time.Parse(DateFormat, r.StartDate)
	end, err2 := time.Parse(DateFormat, r.EndDate)
	if err1 != nil || err2 != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateFormat))
	}
	return dates
}

// Contains 检查日期是否落在范围内
func (r DateRange) Contains(date string) bool {
	return date >= r.StartDate && date <= r.EndDate
}

// Days 返回范围内的天数
func (r DateRange) Days() int {
	start, err1 := time.Parse(DateFormat, r.StartDate)
	end, err2 := time.Parse(DateFormat, r.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// WeekdayIndex 返回日期的星期序号（周一=0 … 周日=6）
func WeekdayIndex(date string) int {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return -1
	}
	// time.Weekday 以周日为 0，这里换算成周一为 0
	return (int(t.Weekday()) + 6) % 7
}

// NextDate 返回后一天日期
func NextDate(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(DateFormat)
}

// PrevDate 返回前一天日期
func PrevDate(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateFormat)
}

// Package model 定义排班系统的核心数据模型
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/zhiban/zhiban/pkg/errors"
)

// ScheduleStatus 排班表生命周期状态
type ScheduleStatus string

const (
	ScheduleDraft     ScheduleStatus = "draft"     // 草稿
	SchedulePublished ScheduleStatus = "published" // 已发布
	ScheduleArchived  ScheduleStatus = "archived"  // 已归档
)

// CanTransitionTo 检查状态流转是否合法
// 生命周期单向流转：draft -> published -> archived。
func (s ScheduleStatus) CanTransitionTo(next ScheduleStatus) bool {
	switch s {
	case ScheduleDraft:
		return next == SchedulePublished
	case SchedulePublished:
		return next == ScheduleArchived
	}
	return false
}

// ShiftAssignment 排班分配记录
// 将一名员工与某日期的一个班次绑定。
type ShiftAssignment struct {
	BaseModel
	ScheduleID uuid.UUID `json:"schedule_id" db:"schedule_id"`
	EmployeeID uuid.UUID `json:"employee_id" db:"employee_id"`
	Date       string    `json:"date" db:"date"` // YYYY-MM-DD
	ShiftType  ShiftType `json:"shift_type" db:"shift_type"`
	Notes      string    `json:"notes,omitempty" db:"notes"`
}

// Validate 校验排班分配记录
// 不允许落库过去日期的分配；引擎输出不做该校验，由存储层把关。
func (a *ShiftAssignment) Validate(today string) error {
	if _, err := time.Parse(DateFormat, a.Date); err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "排班日期格式无效")
	}
	if a.Date < today {
		return errors.InvalidInput("date", "不能创建过去日期的排班")
	}
	if !a.ShiftType.Valid() {
		return errors.InvalidInput("shift_type", string(a.ShiftType))
	}
	if a.EmployeeID == uuid.Nil {
		return errors.InvalidInput("employee_id", "不能为空")
	}
	return nil
}

// SchedulePeriod 排班周期
// 一个日期范围内的完整排班结果及其生命周期状态。
type SchedulePeriod struct {
	BaseModel
	StartDate   string            `json:"start_date" db:"start_date"`
	EndDate     string            `json:"end_date" db:"end_date"`
	Status      ScheduleStatus    `json:"status" db:"status"`
	PublishedAt *time.Time        `json:"published_at,omitempty" db:"published_at"`
	Assignments []ShiftAssignment `json:"assignments,omitempty" db:"-"`
}

// NewSchedulePeriod 创建排班周期，构造时校验日期范围
func NewSchedulePeriod(startDate, endDate string) (*SchedulePeriod, error) {
	rng := DateRange{StartDate: startDate, EndDate: endDate}
	if err := rng.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidTimeRange, "排班周期区间无效")
	}
	return &SchedulePeriod{
		BaseModel: NewBaseModel(),
		StartDate: startDate,
		EndDate:   endDate,
		Status:    ScheduleDraft,
	}, nil
}

// Range 返回排班周期的日期范围
func (p *SchedulePeriod) Range() DateRange {
	return DateRange{StartDate: p.StartDate, EndDate: p.EndDate}
}

// Package model 定义排班系统的核心数据模型
package model

import (
	"github.com/google/uuid"
	"github.com/zhiban/zhiban/pkg/errors"
)

// TimeOffStatus 休假申请状态
type TimeOffStatus string

const (
	TimeOffPending   TimeOffStatus = "pending"
	TimeOffApproved  TimeOffStatus = "approved"
	TimeOffDenied    TimeOffStatus = "denied"
	TimeOffCancelled TimeOffStatus = "cancelled"
)

// Valid 检查状态取值是否合法
func (s TimeOffStatus) Valid() bool {
	switch s {
	case TimeOffPending, TimeOffApproved, TimeOffDenied, TimeOffCancelled:
		return true
	}
	return false
}

// TimeOffType 休假类型
type TimeOffType string

const (
	TimeOffVacation  TimeOffType = "vacation"   // 年假
	TimeOffSickLeave TimeOffType = "sick_leave" // 病假
	TimeOffTraining  TimeOffType = "training"   // 培训
	TimeOffPersonal  TimeOffType = "personal"   // 事假
)

// Valid 检查休假类型是否合法
func (t TimeOffType) Valid() bool {
	switch t {
	case TimeOffVacation, TimeOffSickLeave, TimeOffTraining, TimeOffPersonal:
		return true
	}
	return false
}

// TimeOffRequest 休假申请
// 起止日期为闭区间，仅 APPROVED 状态的申请影响可用性。
type TimeOffRequest struct {
	BaseModel
	EmployeeID uuid.UUID     `json:"employee_id" db:"employee_id"`
	StartDate  string        `json:"start_date" db:"start_date"` // YYYY-MM-DD
	EndDate    string        `json:"end_date" db:"end_date"`     // YYYY-MM-DD
	Type       TimeOffType   `json:"type" db:"type"`
	Status     TimeOffStatus `json:"status" db:"status"`
	Notes      string        `json:"notes,omitempty" db:"notes"`
}

// NewTimeOffRequest 创建休假申请，构造时校验日期区间
func NewTimeOffRequest(employeeID uuid.UUID, startDate, endDate string, typ TimeOffType) (*TimeOffRequest, error) {
	r := &TimeOffRequest{
		BaseModel:  NewBaseModel(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       typ,
		Status:     TimeOffPending,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate 校验休假申请
func (r *TimeOffRequest) Validate() error {
	rng := DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
	if err := rng.Validate(); err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "休假日期区间无效")
	}
	if !r.Type.Valid() {
		return errors.InvalidInput("type", string(r.Type))
	}
	if r.EmployeeID == uuid.Nil {
		return errors.InvalidInput("employee_id", "不能为空")
	}
	return nil
}

// IsApproved 检查申请是否已批准
func (r *TimeOffRequest) IsApproved() bool {
	return r.Status == TimeOffApproved
}

// Covers 检查申请区间是否覆盖指定日期
func (r *TimeOffRequest) Covers(date string) bool {
	return date >= r.StartDate && date <= r.EndDate
}

// Overlaps 检查申请区间是否与指定日期范围有交集
func (r *TimeOffRequest) Overlaps(rng DateRange) bool {
	return r.StartDate <= rng.EndDate && r.EndDate >= rng.StartDate
}

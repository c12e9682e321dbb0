// Package model 定义排班系统的核心数据模型
package model

// ShiftPreference 员工的班次偏好
type ShiftPreference string

const (
	PreferNight   ShiftPreference = "night"
	PreferEvening ShiftPreference = "evening"
	PreferDay     ShiftPreference = "day"
	NoPreference  ShiftPreference = "no_preference"
)

// Valid 检查偏好取值是否合法
func (p ShiftPreference) Valid() bool {
	switch p {
	case PreferNight, PreferEvening, PreferDay, NoPreference:
		return true
	}
	return false
}

// Matches 检查偏好是否命中指定班次类型
// 无偏好的员工不命中任何班次，也永远不计偏好失配。
func (p ShiftPreference) Matches(shift ShiftType) bool {
	return p != NoPreference && string(p) == string(shift)
}

// Employee 员工
type Employee struct {
	BaseModel
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`
	HireDate  string `json:"hire_date" db:"hire_date"` // YYYY-MM-DD

	// 排班相关
	ShiftPreference ShiftPreference `json:"shift_preference" db:"shift_preference"`
	FixedDaysOff    []int           `json:"fixed_days_off" db:"fixed_days_off"` // 周一=0 … 周日=6
	Skills          []string        `json:"skills,omitempty" db:"skills"`
	IsActive        bool            `json:"is_active" db:"is_active"`
}

// FullName 返回员工全名
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// HasFixedDayOff 检查指定星期序号是否为员工的固定休息日
func (e *Employee) HasFixedDayOff(weekday int) bool {
	for _, d := range e.FixedDaysOff {
		if d == weekday {
			return true
		}
	}
	return false
}

// HasSkill 检查员工是否具备某技能
func (e *Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

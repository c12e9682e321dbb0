// Package constraint 定义排班规则和分配状态
package constraint

import (
	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/model"
)

// Type 规则类型标识
type Type string

const (
	TypeMinStaff           Type = "min_staff"        // 班次最低配员
	TypeConsecutiveDaysOff Type = "consecutive_days" // 连续休息天数
	TypeShiftSpacing       Type = "shift_spacing"    // 班次最小间隔
	TypeSkillRequirement   Type = "skill"            // 班次技能要求
	TypeMaxShifts          Type = "max_shifts"       // 周期内最大班次数
)

// Valid 检查规则类型是否合法
func (t Type) Valid() bool {
	switch t {
	case TypeMinStaff, TypeConsecutiveDaysOff, TypeShiftSpacing, TypeSkillRequirement, TypeMaxShifts:
		return true
	}
	return false
}

// Slot 槽位：某日期某班次类型的一个配员单位
// 同一 (日期, 班次) 下的槽位可互换，状态只记录人数不区分槽位身份。
type Slot struct {
	Date  string          `json:"date"`
	Shift model.ShiftType `json:"shift"`
}

// Less 槽位排序：日期升序，同日按班次固定顺序
func (s Slot) Less(other Slot) bool {
	if s.Date != other.Date {
		return s.Date < other.Date
	}
	return s.Shift.Order() < other.Shift.Order()
}

// Rule 排班规则
// 规则在构造期完成参数校验，评估阶段不会因参数缺失而失败。
type Rule interface {
	// Type 返回规则类型
	Type() Type

	// Priority 返回规则优先级 (1-100，值大者先评估)
	Priority() int

	// Active 返回规则是否启用
	Active() bool

	// Description 返回规则的可读描述
	Description() string

	// Violates 前瞻检查：若把 slot 分配给员工，是否违反本规则
	// 针对当前分配状态评估，不修改状态。
	Violates(st *State, employeeID uuid.UUID, slot Slot) bool

	// Violations 整体检查：对完整分配状态逐员工产出违规描述
	// 与 Violates 不同，这里检查的是员工当前全部班次的既成事实。
	Violations(st *State) []string
}

// BaseRule 规则基类
type BaseRule struct {
	typ      Type
	priority int
	active   bool
}

// NewBaseRule 创建规则基类
func NewBaseRule(typ Type, priority int, active bool) BaseRule {
	return BaseRule{typ: typ, priority: priority, active: active}
}

// Type 返回规则类型
func (r BaseRule) Type() Type { return r.typ }

// Priority 返回规则优先级
func (r BaseRule) Priority() int { return r.priority }

// Active 返回规则是否启用
func (r BaseRule) Active() bool { return r.active }

// violationMessage 生成整体检查的违规描述
// 文案与对外告警保持一致：按 (员工, 规则) 维度各产出一条。
func violationMessage(emp *model.Employee, typ Type) string {
	return "Employee " + emp.FullName() + " violates " + string(typ)
}

// Package constraint 定义排班规则和分配状态
package constraint

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// MinStaffRule 班次最低配员规则
// 配员缺口不是针对单个员工的约束：多排一个人不会违反它，
// 因此前瞻检查恒通过，缺口由评分器的全局覆盖统计体现。
type MinStaffRule struct {
	BaseRule
	shift    model.ShiftType
	minCount int
}

// NewMinStaffRule 创建最低配员规则
func NewMinStaffRule(priority int, active bool, shift model.ShiftType, minCount int) (*MinStaffRule, error) {
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if !shift.Valid() {
		return nil, errors.InvalidRule(string(TypeMinStaff), fmt.Sprintf("未知的班次类型 %q", shift))
	}
	if minCount < 1 {
		return nil, errors.InvalidRule(string(TypeMinStaff), fmt.Sprintf("min_count 必须为正数，收到 %d", minCount))
	}
	return &MinStaffRule{
		BaseRule: NewBaseRule(TypeMinStaff, priority, active),
		shift:    shift,
		minCount: minCount,
	}, nil
}

// Description 返回规则描述
func (r *MinStaffRule) Description() string {
	return fmt.Sprintf("%s 班次至少配员 %d 人", r.shift, r.minCount)
}

// Violates 前瞻检查恒通过
func (r *MinStaffRule) Violates(_ *State, _ uuid.UUID, _ Slot) bool {
	return false
}

// Violations 整体检查不产出员工级违规
func (r *MinStaffRule) Violations(_ *State) []string {
	return nil
}

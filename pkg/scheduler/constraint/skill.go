// Package constraint 定义排班规则和分配状态
package constraint

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// SkillRequirementRule 班次技能要求规则
// 指定班次类型要求员工具备全部列出的技能。
// 技能缺口不阻断分配，由评分器按员工产出违规描述。
type SkillRequirementRule struct {
	BaseRule
	shift  model.ShiftType
	skills []string
}

// NewSkillRequirementRule 创建技能要求规则
func NewSkillRequirementRule(priority int, active bool, shift model.ShiftType, skills []string) (*SkillRequirementRule, error) {
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	if !shift.Valid() {
		return nil, errors.InvalidRule(string(TypeSkillRequirement), fmt.Sprintf("未知的班次类型 %q", shift))
	}
	if len(skills) == 0 {
		return nil, errors.InvalidRule(string(TypeSkillRequirement), "required_skills 不能为空")
	}
	return &SkillRequirementRule{
		BaseRule: NewBaseRule(TypeSkillRequirement, priority, active),
		shift:    shift,
		skills:   skills,
	}, nil
}

// Description 返回规则描述
func (r *SkillRequirementRule) Description() string {
	return fmt.Sprintf("%s 班次要求技能 %v", r.shift, r.skills)
}

// Violates 前瞻检查恒通过（技能缺口在评分阶段统计）
func (r *SkillRequirementRule) Violates(_ *State, _ uuid.UUID, _ Slot) bool {
	return false
}

// Violations 整体检查：被排到该班次但缺少任一要求技能的员工
func (r *SkillRequirementRule) Violations(st *State) []string {
	var out []string
	for _, emp := range st.Employees() {
		assigned := false
		for _, sl := range st.EmployeeSlots(emp.ID) {
			if sl.Shift == r.shift {
				assigned = true
				break
			}
		}
		if !assigned {
			continue
		}

		for _, skill := range r.skills {
			if !emp.HasSkill(skill) {
				out = append(out, violationMessage(emp, r.Type()))
				break
			}
		}
	}
	return out
}

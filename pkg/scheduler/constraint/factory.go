// Package constraint 定义排班规则和分配状态
package constraint

import (
	"fmt"
	"sort"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// Parse 根据规则类型和参数包构造规则
// 参数包来自外部存储（JSONB），必填参数缺失或类型不符时返回配置错误；
// 配置错误不允许被吞掉，否则规则检查会被静默跳过。
func Parse(typ Type, priority int, active bool, params model.JSONMap) (Rule, error) {
	switch typ {
	case TypeMinStaff:
		shift, err := shiftParam(typ, params, "shift_type")
		if err != nil {
			return nil, err
		}
		minCount, err := intParam(typ, params, "min_count")
		if err != nil {
			return nil, err
		}
		return NewMinStaffRule(priority, active, shift, minCount)

	case TypeConsecutiveDaysOff:
		minDays, err := intParam(typ, params, "min_days")
		if err != nil {
			return nil, err
		}
		return NewConsecutiveDaysOffRule(priority, active, minDays)

	case TypeShiftSpacing:
		minHours, err := intParam(typ, params, "min_hours")
		if err != nil {
			return nil, err
		}
		return NewShiftSpacingRule(priority, active, minHours)

	case TypeSkillRequirement:
		shift, err := shiftParam(typ, params, "shift_type")
		if err != nil {
			return nil, err
		}
		skills, err := stringListParam(typ, params, "required_skills")
		if err != nil {
			return nil, err
		}
		return NewSkillRequirementRule(priority, active, shift, skills)

	case TypeMaxShifts:
		periodDays, err := intParam(typ, params, "period_days")
		if err != nil {
			return nil, err
		}
		maxCount, err := intParam(typ, params, "max_count")
		if err != nil {
			return nil, err
		}
		return NewMaxShiftsRule(priority, active, periodDays, maxCount)
	}

	return nil, errors.InvalidRule(string(typ), "未知的规则类型")
}

// SortByPriority 按优先级降序排序规则（稳定排序）
// 优先级只用于排序和报告，不会截断后续规则的评估。
func SortByPriority(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority() > rules[j].Priority()
	})
}

// validatePriority 校验优先级取值
func validatePriority(priority int) error {
	if priority < 1 || priority > 100 {
		return errors.InvalidRule("priority", fmt.Sprintf("优先级必须在 1-100 之间，收到 %d", priority))
	}
	return nil
}

// intParam 从参数包提取整数参数
// JSON 反序列化会把数字解析成 float64，这里做统一收敛。
func intParam(typ Type, params model.JSONMap, key string) (int, error) {
	val, ok := params[key]
	if !ok {
		return 0, errors.InvalidRule(string(typ), fmt.Sprintf("缺少必填参数 %q", key))
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	}
	return 0, errors.InvalidRule(string(typ), fmt.Sprintf("参数 %q 必须是整数", key))
}

// shiftParam 从参数包提取班次类型参数
func shiftParam(typ Type, params model.JSONMap, key string) (model.ShiftType, error) {
	val, ok := params[key]
	if !ok {
		return "", errors.InvalidRule(string(typ), fmt.Sprintf("缺少必填参数 %q", key))
	}
	s, ok := val.(string)
	if !ok {
		return "", errors.InvalidRule(string(typ), fmt.Sprintf("参数 %q 必须是字符串", key))
	}
	shift, err := model.ParseShiftType(s)
	if err != nil {
		return "", errors.InvalidRule(string(typ), err.Error())
	}
	return shift, nil
}

// stringListParam 从参数包提取字符串列表参数
func stringListParam(typ Type, params model.JSONMap, key string) ([]string, error) {
	val, ok := params[key]
	if !ok {
		return nil, errors.InvalidRule(string(typ), fmt.Sprintf("缺少必填参数 %q", key))
	}
	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.InvalidRule(string(typ), fmt.Sprintf("参数 %q 必须是字符串列表", key))
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, errors.InvalidRule(string(typ), fmt.Sprintf("参数 %q 必须是字符串列表", key))
}

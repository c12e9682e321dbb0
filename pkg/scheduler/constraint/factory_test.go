package constraint

import (
	"testing"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

func TestParse_AllRuleTypes(t *testing.T) {
	tests := []struct {
		name   string
		typ    Type
		params model.JSONMap
	}{
		{"最低配员", TypeMinStaff, model.JSONMap{"shift_type": "night", "min_count": 4}},
		{"连续休息", TypeConsecutiveDaysOff, model.JSONMap{"min_days": 2}},
		{"班次间隔", TypeShiftSpacing, model.JSONMap{"min_hours": 12}},
		{"技能要求", TypeSkillRequirement, model.JSONMap{"shift_type": "night", "required_skills": []string{"icu"}}},
		{"最大班次", TypeMaxShifts, model.JSONMap{"period_days": 7, "max_count": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := Parse(tt.typ, 50, true, tt.params)
			if err != nil {
				t.Fatalf("Parse(%s) failed: %v", tt.typ, err)
			}
			if rule.Type() != tt.typ {
				t.Errorf("Type = %s, want %s", rule.Type(), tt.typ)
			}
			if rule.Priority() != 50 || !rule.Active() {
				t.Error("Priority/Active not carried through")
			}
			if rule.Description() == "" {
				t.Error("Expected non-empty description")
			}
		})
	}
}

func TestParse_MissingParams(t *testing.T) {
	// 必填参数缺失必须报错，不能静默跳过规则
	tests := []struct {
		name   string
		typ    Type
		params model.JSONMap
	}{
		{"最低配员缺班次", TypeMinStaff, model.JSONMap{"min_count": 4}},
		{"最低配员缺人数", TypeMinStaff, model.JSONMap{"shift_type": "night"}},
		{"连续休息缺天数", TypeConsecutiveDaysOff, model.JSONMap{}},
		{"班次间隔缺小时", TypeShiftSpacing, nil},
		{"技能要求缺技能", TypeSkillRequirement, model.JSONMap{"shift_type": "night"}},
		{"最大班次缺上限", TypeMaxShifts, model.JSONMap{"period_days": 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.typ, 50, true, tt.params)
			if err == nil {
				t.Fatal("Expected error for missing params")
			}
			if errors.GetCode(err) != errors.CodeInvalidRule {
				t.Errorf("Expected CodeInvalidRule, got %s", errors.GetCode(err))
			}
		})
	}
}

func TestParse_JSONNumberCoercion(t *testing.T) {
	// JSON 反序列化把数字解析成 float64
	rule, err := Parse(TypeMaxShifts, 50, true, model.JSONMap{"period_days": float64(7), "max_count": float64(5)})
	if err != nil {
		t.Fatalf("Parse with float64 params failed: %v", err)
	}
	ms, ok := rule.(*MaxShiftsRule)
	if !ok {
		t.Fatalf("Expected *MaxShiftsRule, got %T", rule)
	}
	if ms.MaxCount() != 5 {
		t.Errorf("MaxCount = %d, want 5", ms.MaxCount())
	}

	// []interface{} 形式的技能列表
	rule, err = Parse(TypeSkillRequirement, 50, true, model.JSONMap{
		"shift_type":      "day",
		"required_skills": []interface{}{"icu", "triage"},
	})
	if err != nil {
		t.Fatalf("Parse with []interface{} skills failed: %v", err)
	}
	if rule.Type() != TypeSkillRequirement {
		t.Errorf("Unexpected rule type %s", rule.Type())
	}
}

func TestParse_BadParamTypes(t *testing.T) {
	if _, err := Parse(TypeShiftSpacing, 50, true, model.JSONMap{"min_hours": "twelve"}); err == nil {
		t.Error("Expected error for string min_hours")
	}
	if _, err := Parse(TypeMinStaff, 50, true, model.JSONMap{"shift_type": 3, "min_count": 4}); err == nil {
		t.Error("Expected error for numeric shift_type")
	}
	if _, err := Parse(TypeSkillRequirement, 50, true, model.JSONMap{"shift_type": "day", "required_skills": []interface{}{1, 2}}); err == nil {
		t.Error("Expected error for non-string skill entries")
	}
}

func TestParse_UnknownType(t *testing.T) {
	_, err := Parse(Type("overtime"), 50, true, model.JSONMap{})
	if err == nil {
		t.Fatal("Expected error for unknown rule type")
	}
}

func TestSortByPriority(t *testing.T) {
	low, _ := NewShiftSpacingRule(10, true, 12)
	mid1, _ := NewMaxShiftsRule(50, true, 7, 5)
	mid2, _ := NewConsecutiveDaysOffRule(50, true, 2)
	high, _ := NewMinStaffRule(90, true, model.ShiftNight, 4)

	rules := []Rule{low, mid1, mid2, high}
	SortByPriority(rules)

	if rules[0] != high || rules[3] != low {
		t.Error("Expected descending priority order")
	}
	// 同优先级保持输入顺序（稳定排序）
	if rules[1] != mid1 || rules[2] != mid2 {
		t.Error("Expected stable order among equal priorities")
	}
}

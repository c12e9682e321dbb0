// Package scheduler 实现排班生成引擎
//
// 引擎是纯内存的单线程计算：一次 Generate 调用独占自己的工作状态，
// 不做 I/O、不打日志、不持久化，结束后输出草稿排班周期和告警列表。
// 调用方如需超时或取消，在引擎外层自行包装。
package scheduler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// Generator 排班生成器
// 持有一次生成运行的全部输入和工作状态，运行结束即丢弃，
// 跨调用不保留任何状态。
type Generator struct {
	window    model.DateRange
	employees []*model.Employee // 仅在职员工
	rules     []constraint.Rule // 按优先级降序
	timeOff   []*model.TimeOffRequest

	avail availabilityMap
}

// NewGenerator 创建排班生成器
// 构造时校验排班窗口并过滤非在职员工；规则按优先级降序排列，
// 优先级只影响报告顺序，所有启用规则都会被评估。
func NewGenerator(window model.DateRange, employees []*model.Employee, rules []constraint.Rule, timeOff []*model.TimeOffRequest) (*Generator, error) {
	if err := window.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidTimeRange, "排班窗口无效")
	}

	active := make([]*model.Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.IsActive {
			active = append(active, emp)
		}
	}

	sorted := make([]constraint.Rule, len(rules))
	copy(sorted, rules)
	constraint.SortByPriority(sorted)

	return &Generator{
		window:    window,
		employees: active,
		rules:     sorted,
		timeOff:   timeOff,
	}, nil
}

// Generate 生成排班
// 流程固定：构建可用性 -> 生成需求 -> 贪心分配 -> 局部搜索优化 ->
// 评分并物化输出。每步只执行一次，相同输入得到相同输出。
func (g *Generator) Generate() (*model.SchedulePeriod, []string) {
	g.avail = buildAvailability(g.window, g.employees, g.timeOff)

	st := constraint.NewState(g.window, g.employees)
	required := g.requiredSlots()

	g.greedyAssign(st, required)
	g.optimize(st)

	score := g.evaluate(st)

	var warnings []string
	if score.UnfilledShifts > 0 {
		warnings = append(warnings, fmt.Sprintf("Unable to fill %d shifts", score.UnfilledShifts))
	}
	warnings = append(warnings, score.RuleViolations...)
	if score.PreferenceMismatches > 0 {
		warnings = append(warnings, fmt.Sprintf("Schedule contains %d shift preference mismatches", score.PreferenceMismatches))
	}

	return g.materialize(st), warnings
}

// requiredSlots 展开排班窗口内需要填充的全部槽位
// 每个 (日期, 班次) 按班次类型的最低配员人数产出同等数量的槽位。
func (g *Generator) requiredSlots() []constraint.Slot {
	var required []constraint.Slot
	for _, date := range g.window.Dates() {
		for _, shift := range model.AllShiftTypes {
			for i := 0; i < shift.MinStaff(); i++ {
				required = append(required, constraint.Slot{Date: date, Shift: shift})
			}
		}
	}
	return required
}

// assignable 检查员工是否可以被分配到槽位
// 条件：当日可用、当日没有其他班次、不违反任何启用规则。
func (g *Generator) assignable(st *constraint.State, employeeID uuid.UUID, slot constraint.Slot) bool {
	if !g.avail.available(slot.Date, employeeID) {
		return false
	}
	// 每人每天至多一个班次
	if st.HasShiftOn(employeeID, slot.Date) {
		return false
	}
	for _, rule := range g.rules {
		if !rule.Active() {
			continue
		}
		if rule.Violates(st, employeeID, slot) {
			return false
		}
	}
	return true
}

// materialize 把内部分配状态物化为对外的排班周期
// 排班周期和分配记录的 ID 此时留空，由持久化层落库时补齐。
func (g *Generator) materialize(st *constraint.State) *model.SchedulePeriod {
	period := &model.SchedulePeriod{
		StartDate: g.window.StartDate,
		EndDate:   g.window.EndDate,
		Status:    model.ScheduleDraft,
	}

	for _, slot := range st.SlotKeys() {
		for _, employeeID := range st.Assigned(slot) {
			period.Assignments = append(period.Assignments, model.ShiftAssignment{
				EmployeeID: employeeID,
				Date:       slot.Date,
				ShiftType:  slot.Shift,
			})
		}
	}
	return period
}

// Package scheduler 实现排班生成引擎
package scheduler

import (
	"sort"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// greedyAssign 贪心构造初始排班
// 先按候选人稀缺程度排序槽位（最难填的在前，平局保持输入顺序），
// 再逐槽重算候选名单并分配排名最高的员工。每次分配都会改变后续
// 槽位的候选集，因此候选名单不做缓存。
func (g *Generator) greedyAssign(st *constraint.State, required []constraint.Slot) {
	type scoredSlot struct {
		slot     constraint.Slot
		eligible int
	}

	scored := make([]scoredSlot, len(required))
	for i, slot := range required {
		scored[i] = scoredSlot{slot: slot, eligible: len(g.eligibleEmployees(st, slot))}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].eligible < scored[j].eligible
	})

	for _, item := range scored {
		candidates := g.eligibleEmployees(st, item.slot)
		if len(candidates) == 0 {
			// 无人可排不是错误，缺口计入评分并以告警形式上报
			continue
		}
		st.Assign(candidates[0], item.slot)
	}
}

// eligibleEmployees 计算槽位的候选员工名单
// 候选人按适配度排序：偏好命中者优先，同档按当前已分配班次数
// 升序（偏向负荷最轻的员工）。排序稳定，保证相同输入产出相同顺序。
func (g *Generator) eligibleEmployees(st *constraint.State, slot constraint.Slot) []uuid.UUID {
	var eligible []uuid.UUID
	for _, emp := range g.employees {
		if g.assignable(st, emp.ID, slot) {
			eligible = append(eligible, emp.ID)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		mi := st.Employee(eligible[i]).ShiftPreference.Matches(slot.Shift)
		mj := st.Employee(eligible[j]).ShiftPreference.Matches(slot.Shift)
		if mi != mj {
			return mi
		}
		return st.ShiftCount(eligible[i]) < st.ShiftCount(eligible[j])
	})

	return eligible
}

// Package scheduler 实现排班生成引擎
package scheduler

import (
	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// maxOptimizePasses 局部搜索的最大改进轮数
// 这是引擎唯一的运行时长保护，没有墙钟超时。
const maxOptimizePasses = 1000

// optimize 用局部搜索改进贪心解
// 每轮遍历所有有序槽位对及其员工对，尝试交换两人的班次；
// 只接受严格优于本轮起始分数的交换（贪心爬山，不接受劣化移动），
// 一整轮没有任何被接受的改进交换、或达到轮数上限时停止。
// 算法可能停在局部最优，这是有意的取舍。
func (g *Generator) optimize(st *constraint.State) {
	for pass := 0; pass < maxOptimizePasses; pass++ {
		improved := false
		passScore := g.evaluate(st).TotalScore

		keys := st.SlotKeys()
		for _, slot1 := range keys {
			for _, slot2 := range keys {
				if slot1 == slot2 {
					continue
				}

				// 交换会改动槽位成员，先快照当前名单
				emps1 := append([]uuid.UUID(nil), st.Assigned(slot1)...)
				emps2 := append([]uuid.UUID(nil), st.Assigned(slot2)...)

				for _, emp1 := range emps1 {
					for _, emp2 := range emps2 {
						if emp1 == emp2 {
							continue
						}
						if !g.trySwap(st, emp1, slot1, emp2, slot2) {
							continue
						}
						if g.evaluate(st).TotalScore > passScore {
							improved = true
						} else {
							g.revertSwap(st, emp1, slot1, emp2, slot2)
						}
					}
				}
			}
		}

		if !improved {
			break
		}
	}
}

// trySwap 尝试交换两名员工的班次
// 先撤销双方原有分配，再检查互换后的两个新分配是否都合法；
// 都合法则提交交换并返回 true，否则恢复原状并返回 false。
// 任一员工已不在对应槽位上时视为失败（槽位成员可能已被先前的
// 交换改动）。
func (g *Generator) trySwap(st *constraint.State, emp1 uuid.UUID, slot1 constraint.Slot, emp2 uuid.UUID, slot2 constraint.Slot) bool {
	if !st.Unassign(emp1, slot1) {
		return false
	}
	if !st.Unassign(emp2, slot2) {
		st.Assign(emp1, slot1)
		return false
	}

	if g.assignable(st, emp2, slot1) && g.assignable(st, emp1, slot2) {
		st.Assign(emp2, slot1)
		st.Assign(emp1, slot2)
		return true
	}

	st.Assign(emp1, slot1)
	st.Assign(emp2, slot2)
	return false
}

// revertSwap 无条件撤销一次已提交的交换
// 回滚还原的是交换前的既有状态，不再重跑规则检查：
// 带检查的反向交换可能失败并把劣化状态留在原地。
func (g *Generator) revertSwap(st *constraint.State, emp1 uuid.UUID, slot1 constraint.Slot, emp2 uuid.UUID, slot2 constraint.Slot) {
	st.Unassign(emp2, slot1)
	st.Unassign(emp1, slot2)
	st.Assign(emp1, slot1)
	st.Assign(emp2, slot2)
}

package types

import (
	"fmt"
	"strings"
)

// Transition 有向迁移
type Transition uint

// 模型拓扑固定的十条迁移
const (
	C1C2 Transition = iota
	C2C1
	C2O1
	O1C2
	O1I1
	I1O1
	I1C1
	C1I1
	I1I2
	I2I1
	TransitionCount
)

// transitionTable 迁移映射
var transitionTable = [TransitionCount]struct {
	Name     string
	From, To State
}{
	C1C2: {Name: "C1C2", From: C1, To: C2},
	C2C1: {Name: "C2C1", From: C2, To: C1},
	C2O1: {Name: "C2O1", From: C2, To: O1},
	O1C2: {Name: "O1C2", From: O1, To: C2},
	O1I1: {Name: "O1I1", From: O1, To: I1},
	I1O1: {Name: "I1O1", From: I1, To: O1},
	I1C1: {Name: "I1C1", From: I1, To: C1},
	C1I1: {Name: "C1I1", From: C1, To: I1},
	I1I2: {Name: "I1I2", From: I1, To: I2},
	I2I1: {Name: "I2I1", From: I2, To: I1},
}

// String 返回迁移名称
func (t Transition) String() string {
	if t < TransitionCount {
		return transitionTable[t].Name
	}
	return fmt.Sprintf("Transition(%d)", uint(t))
}

// From 起始状态
func (t Transition) From() State { return transitionTable[t].From }

// To 目标状态
func (t Transition) To() State { return transitionTable[t].To }

// ParseTransition 通过名称获取迁移，忽略大小写
func ParseTransition(name string) (Transition, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for t, v := range transitionTable {
		if v.Name == name {
			return Transition(t), nil
		}
	}
	return TransitionCount, fmt.Errorf("未知迁移: %q", name)
}

// Transitions 返回全部迁移
func Transitions() []Transition {
	list := make([]Transition, TransitionCount)
	for i := range list {
		list[i] = Transition(i)
	}
	return list
}

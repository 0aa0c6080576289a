package types

import (
	"fmt"
	"strings"
)

// State 通道状态
type State uint

// 五状态马尔可夫模型
const (
	C1 State = iota // 关闭态1
	C2              // 关闭态2
	O1              // 开放态
	I1              // 快失活态
	I2              // 慢失活态
	StateCount
)

var stateName = [StateCount]string{"C1", "C2", "O1", "I1", "I2"}

// String 返回状态名称
func (s State) String() string {
	if s < StateCount {
		return stateName[s]
	}
	return fmt.Sprintf("State(%d)", uint(s))
}

// ParseState 通过名称获取状态
func ParseState(name string) (State, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, n := range stateName {
		if n == name {
			return State(s), nil
		}
	}
	return StateCount, fmt.Errorf("未知状态: %q", name)
}

// States 返回全部状态
func States() []State {
	return []State{C1, C2, O1, I1, I2}
}

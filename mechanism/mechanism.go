package mechanism

import (
	"na15/kinetics"
	"na15/types"
)

// Mechanism 外部仿真器中每个分段上的通道机制，接收五个状态变量的初值
type Mechanism interface {
	SetInitial(state types.State, value float64)
}

// Segment 内存中的分段机制
type Segment struct {
	Name    string
	Initial types.Occupancy // iC1 iC2 iO1 iI1 iI2
	set     [types.StateCount]bool
}

// SetInitial 设置状态初值
func (seg *Segment) SetInitial(state types.State, value float64) {
	seg.Initial[state] = value
	seg.set[state] = true
}

// Ready 五个状态是否均已赋值
func (seg *Segment) Ready() bool {
	for _, ok := range seg.set {
		if !ok {
			return false
		}
	}
	return true
}

// Initialize 将稳态占有率赋给每个分段
func Initialize(occ types.Occupancy, segs ...Mechanism) {
	for _, seg := range segs {
		for _, s := range types.States() {
			seg.SetInitial(s, occ[s])
		}
	}
}

// InitAt 求解稳态后赋值，求解失败时不修改任何分段
func InitAt(sch *kinetics.Scheme, v, celsius float64, segs ...Mechanism) (types.Occupancy, error) {
	occ, err := sch.SteadyState(v, celsius)
	if err != nil {
		return types.Occupancy{}, err
	}
	Initialize(occ, segs...)
	return occ, nil
}

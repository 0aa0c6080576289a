package types

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Occupancy 各状态占有率，顺序为 [C1, C2, O1, I1, I2]
type Occupancy [StateCount]float64

// Get 获取指定状态占有率
func (o Occupancy) Get(s State) float64 { return o[s] }

// Sum 占有率之和
func (o Occupancy) Sum() float64 { return floats.Sum(o[:]) }

// Available 未失活部分 C1+C2+O1
func (o Occupancy) Available() float64 { return o[C1] + o[C2] + o[O1] }

// Slice 返回切片副本
func (o Occupancy) Slice() []float64 { return append([]float64(nil), o[:]...) }

// String 按 [C1, C2, O1, I1, I2] 顺序输出
func (o Occupancy) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range o {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

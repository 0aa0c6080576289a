package kinetics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"na15/types"
)

// ErrSingular 稳态线性方程组奇异
var ErrSingular = errors.New("steady-state linear system is singular")

// eliminated 由守恒关系消去的状态
const eliminated = types.I2

// unknowns 方程组未知量个数
const unknowns = int(types.StateCount) - 1

// column 状态在未知量向量中的位置，被消去状态返回 -1
func column(s types.State) int {
	switch {
	case s == eliminated:
		return -1
	case s > eliminated:
		return int(s) - 1
	}
	return int(s)
}

// Matrix 组装稳态平衡方程 A·x = b，x 为除 I2 外的四个占有率
// 第 i 行: 流出速率之和 × x_i = Σ 流入速率 × x_j
// 来自 I2 的流入通过 I2 = 1-Σx 并入系数和右端
func Matrix(r Rates) (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(unknowns, unknowns, nil)
	b := mat.NewVecDense(unknowns, nil)
	for t, k := range r {
		tr := types.Transition(t)
		from, to := column(tr.From()), column(tr.To())
		if from >= 0 {
			a.Set(from, from, a.At(from, from)-k)
		}
		if to < 0 {
			continue
		}
		if from >= 0 {
			a.Set(to, from, a.At(to, from)+k)
			continue
		}
		for j := 0; j < unknowns; j++ {
			a.Set(to, j, a.At(to, j)-k)
		}
		b.SetVec(to, b.AtVec(to)-k)
	}
	return a, b
}

// SteadyState 求解给定保持电位和温度下的稳态占有率
// 不做范围检查，I2 由守恒关系得到
func (sch *Scheme) SteadyState(v, celsius float64) (types.Occupancy, error) {
	a, b := Matrix(sch.Rates(v, celsius))
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return types.Occupancy{}, fmt.Errorf("%w (v=%g mV, celsius=%g): %w", ErrSingular, v, celsius, err)
	}
	var occ types.Occupancy
	var sum float64
	for _, s := range types.States() {
		if c := column(s); c >= 0 {
			occ[s] = x.AtVec(c)
			sum += occ[s]
		}
	}
	occ[eliminated] = 1 - sum
	for _, s := range types.States() {
		if !finite(occ[s]) {
			return types.Occupancy{}, fmt.Errorf("%w (v=%g mV, celsius=%g): %s = %g", ErrSingular, v, celsius, s, occ[s])
		}
	}
	return occ, nil
}

// SteadyState 使用默认模型求解
func SteadyState(v, celsius float64) (types.Occupancy, error) {
	return defaultScheme.SteadyState(v, celsius)
}

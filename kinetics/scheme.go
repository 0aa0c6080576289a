package kinetics

import (
	"errors"
	"fmt"
	"math"

	"na15/types"
)

// Scheme 五状态动力学模型参数表
// 创建后视为只读，需要修改时先 Clone
type Scheme struct {
	Funcs   [types.TransitionCount]RateFunc // 按迁移索引的速率函数
	Q10Base float64                         // 每 10°C 的速率倍数
	TempRef float64                         // 参考温度 (°C)
}

// Rates 各迁移在给定电压和温度下的速率 (1/ms)
type Rates [types.TransitionCount]float64

// Get 获取指定迁移速率
func (r Rates) Get(t types.Transition) float64 { return r[t] }

// defaultFuncs Na1.5 模型参数
var defaultFuncs = [types.TransitionCount]RateFunc{
	types.C1C2: {{B: 8, VHalf: -16, K: -9}},
	types.C2C1: {{B: 2, VHalf: -82, K: 5}, {B: 8, VHalf: -16, K: -9}},
	types.C2O1: {{B: 8, VHalf: -26, K: -9}},
	types.O1C2: {{B: 3, VHalf: -92, K: 5}, {B: 8, VHalf: -26, K: -9}},
	types.O1I1: {{B: 8, VHalf: -50, K: 4}, {B: 6, VHalf: 10, K: -100}},
	types.I1O1: {{B: 0.00001, VHalf: -20, K: 10}},
	types.I1C1: {{B: 0.35, VHalf: -122, K: 9}},
	types.C1I1: {{B: 0.04, VHalf: -78, K: -10}},
	types.I1I2: {{B: 0.00018, VHalf: -60, K: -5}},
	types.I2I1: {{B: 0.001825, VHalf: -88, K: 31}},
}

var defaultScheme = Default()

// Default 返回默认模型的副本
func Default() *Scheme {
	sch := &Scheme{Q10Base: types.Q10Base, TempRef: types.TempRef}
	for t, f := range defaultFuncs {
		sch.Funcs[t] = append(RateFunc(nil), f...)
	}
	return sch
}

// Clone 深拷贝
func (sch *Scheme) Clone() *Scheme {
	cp := *sch
	for t, f := range sch.Funcs {
		cp.Funcs[t] = append(RateFunc(nil), f...)
	}
	return &cp
}

// Terms 速率项总数
func (sch *Scheme) Terms() int {
	n := 0
	for _, f := range sch.Funcs {
		n += len(f)
	}
	return n
}

// Validate 检查参数表
func (sch *Scheme) Validate() error {
	var errs []error
	if !finite(sch.Q10Base) || sch.Q10Base <= 0 {
		errs = append(errs, fmt.Errorf("Q10 底数无效: %g", sch.Q10Base))
	}
	if !finite(sch.TempRef) {
		errs = append(errs, fmt.Errorf("参考温度无效: %g", sch.TempRef))
	}
	for t, f := range sch.Funcs {
		tr := types.Transition(t)
		if len(f) == 0 {
			errs = append(errs, fmt.Errorf("迁移 %s 缺少速率项", tr))
		}
		for i, s := range f {
			if s.K == 0 {
				errs = append(errs, fmt.Errorf("迁移 %s 第 %d 项斜率为零", tr, i))
			}
			if !finite(s.B) || !finite(s.VHalf) || !finite(s.K) {
				errs = append(errs, fmt.Errorf("迁移 %s 第 %d 项含非有限值", tr, i))
			}
		}
	}
	return errors.Join(errs...)
}

// Q10 温度补偿系数 Q10Base^((celsius-TempRef)/10)
func (sch *Scheme) Q10(celsius float64) float64 {
	return math.Pow(sch.Q10Base, (celsius-sch.TempRef)/10)
}

// Rates 计算全部迁移速率
func (sch *Scheme) Rates(v, celsius float64) (r Rates) {
	q10 := sch.Q10(celsius)
	for t, f := range sch.Funcs {
		r[t] = q10 * f.Rate(v)
	}
	return r
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

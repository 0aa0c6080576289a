package kinetics

import "math"

// Sigmoid 玻尔兹曼型速率项 B/(1+exp((v-VHalf)/K))
type Sigmoid struct {
	B     float64 // 幅值 (1/ms)
	VHalf float64 // 半激活电压 (mV)
	K     float64 // 斜率 (mV)
}

// Rate 计算电压 v 下的速率
func (s Sigmoid) Rate(v float64) float64 {
	return s.B / (1 + math.Exp((v-s.VHalf)/s.K))
}

// RateFunc 一条迁移的速率函数，为若干速率项之和
type RateFunc []Sigmoid

// Rate 计算各项之和
func (f RateFunc) Rate(v float64) float64 {
	var sum float64
	for _, s := range f {
		sum += s.Rate(v)
	}
	return sum
}

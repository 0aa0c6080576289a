package kinetics

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"na15/types"
)

// closeTo 相对误差比较
func closeTo(got, want float64) bool {
	return math.Abs(got-want) <= 1e-12+1e-7*math.Abs(want)
}

func TestSteadyStateReference(t *testing.T) {
	cases := []struct {
		v, celsius float64
		want       types.Occupancy
	}{
		{-120, 24, types.Occupancy{0.9961792211035285, 3.8202698645820095e-05, 3.806385420997225e-09, 0.0037825692827003427, 3.108739821122697e-09}},
		{-80, 24, types.Occupancy{0.15153553737959746, 0.0011934268286220183, 3.202725254711525e-06, 0.8438332085306459, 0.0034346245358798377}},
		{-60, 37, types.Occupancy{0.004050824941757074, 0.0009339069078219559, 1.8333854232938463e-05, 0.8496966984543163, 0.1453002358418718}},
		{-20, 20, types.Occupancy{2.787332330715321e-06, 2.146992706958539e-06, 1.768384752372046e-06, 0.5043556817290281, 0.4956376155611818}},
		{0, 30, types.Occupancy{2.4651858024125674e-07, 2.241392661439077e-07, 2.0393038590930008e-07, 0.35912129196372017, 0.6408780334480475}},
		{30, 22, types.Occupancy{5.1707838235547705e-09, 4.82897134102934e-09, 4.48853305094208e-09, 0.1806341915427512, 0.8193657939689606}},
	}
	for _, c := range cases {
		got, err := SteadyState(c.v, c.celsius)
		if err != nil {
			t.Fatalf("v=%v celsius=%v 求解失败: %v", c.v, c.celsius, err)
		}
		for _, s := range types.States() {
			if !closeTo(got[s], c.want[s]) {
				t.Errorf("v=%v celsius=%v %s 错误: 期望 %v, 实际 %v", c.v, c.celsius, s, c.want[s], got[s])
			}
		}
	}
}

func TestSteadyStateConservation(t *testing.T) {
	for v := -150.0; v <= 50; v += 2.5 {
		for c := 0.0; c <= 40; c += 2 {
			occ, err := SteadyState(v, c)
			if err != nil {
				t.Fatalf("v=%v celsius=%v 求解失败: %v", v, c, err)
			}
			if d := math.Abs(occ.Sum() - 1); d > types.Tolerance {
				t.Errorf("v=%v celsius=%v 守恒误差 %v", v, c, d)
			}
		}
	}
}

func TestSteadyStateNonNegative(t *testing.T) {
	for v := types.PhysioMin; v <= types.PhysioMax; v++ {
		for c := 20.0; c <= 37; c++ {
			occ, err := SteadyState(v, c)
			if err != nil {
				t.Fatalf("v=%v celsius=%v 求解失败: %v", v, c, err)
			}
			for _, s := range types.States() {
				if occ[s] < -types.Tolerance || occ[s] > 1+types.Tolerance {
					t.Errorf("v=%v celsius=%v %s 超出 [0,1]: %v", v, c, s, occ[s])
				}
			}
		}
	}
}

func TestSteadyStateDeterministic(t *testing.T) {
	a, err := SteadyState(-73.25, 31.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SteadyState(-73.25, 31.5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Errorf("第 %d 项两次结果不一致: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSteadyStateIsEquilibrium(t *testing.T) {
	// 稳态下每个状态净流量为零
	sch := Default()
	for _, v := range []float64{-130, -90, -45, 10} {
		occ, err := sch.SteadyState(v, 24)
		if err != nil {
			t.Fatal(err)
		}
		r := sch.Rates(v, 24)
		var flux [types.StateCount]float64
		for _, tr := range types.Transitions() {
			f := r[tr] * occ[tr.From()]
			flux[tr.From()] -= f
			flux[tr.To()] += f
		}
		for s, f := range flux {
			if math.Abs(f) > 1e-12 {
				t.Errorf("v=%v %s 净流量不为零: %v", v, types.State(s), f)
			}
		}
	}
}

func TestMatrixMatchesBalanceEquations(t *testing.T) {
	r := Default().Rates(-70, 24)
	k := func(tr types.Transition) float64 { return r[tr] }
	want := mat.NewDense(4, 4, []float64{
		-(k(types.C1I1) + k(types.C1C2)), k(types.C2C1), 0, k(types.I1C1),
		k(types.C1C2), -(k(types.C2C1) + k(types.C2O1)), k(types.O1C2), 0,
		0, k(types.C2O1), -(k(types.O1C2) + k(types.O1I1)), k(types.I1O1),
		k(types.C1I1) - k(types.I2I1), -k(types.I2I1), k(types.O1I1) - k(types.I2I1), -(k(types.I1C1) + k(types.I1I2) + k(types.I1O1) + k(types.I2I1)),
	})
	wantB := mat.NewVecDense(4, []float64{0, 0, 0, -k(types.I2I1)})
	a, b := Matrix(r)
	if !mat.EqualApprox(a, want, 1e-14) {
		t.Errorf("系数矩阵错误:\n%v\n期望:\n%v", mat.Formatted(a), mat.Formatted(want))
	}
	if !mat.EqualApprox(b, wantB, 1e-14) {
		t.Errorf("右端向量错误: %v", mat.Formatted(b.T()))
	}
}

func TestSteadyStateSingular(t *testing.T) {
	sch := Default()
	for tr := range sch.Funcs {
		for i := range sch.Funcs[tr] {
			sch.Funcs[tr][i].B = 0
		}
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("零幅值参数表应合法: %v", err)
	}
	_, err := sch.SteadyState(-120, 24)
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("期望 ErrSingular, 实际 %v", err)
	}
	// 默认模型不受影响
	if _, err := SteadyState(-120, 24); err != nil {
		t.Fatalf("默认模型被修改: %v", err)
	}
}

func TestSteadyStateNonFinite(t *testing.T) {
	_, err := SteadyState(math.NaN(), 24)
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("NaN 电压应返回 ErrSingular, 实际 %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("默认模型应合法: %v", err)
	}
	sch := Default()
	sch.Funcs[types.I1I2] = nil
	sch.Funcs[types.C1C2][0].K = 0
	sch.Q10Base = 0
	err := sch.Validate()
	if err == nil {
		t.Fatalf("应检测到错误")
	}
	for _, s := range []string{"I1I2", "C1C2", "Q10"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("错误信息缺少 %s: %v", s, err)
		}
	}
}

func TestClone(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Funcs[types.C2C1][1].B = 100
	if a.Funcs[types.C2C1][1].B != 8 {
		t.Errorf("Clone 共享了速率项")
	}
}

func BenchmarkSteadyState(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := SteadyState(-120, 24); err != nil {
			b.Fatal(err)
		}
	}
}

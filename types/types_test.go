package types

import "testing"

func TestTransitionTopology(t *testing.T) {
	// 每条迁移都有反向迁移
	for _, tr := range Transitions() {
		found := false
		for _, rev := range Transitions() {
			if rev.From() == tr.To() && rev.To() == tr.From() {
				found = true
			}
		}
		if !found {
			t.Errorf("迁移 %s 缺少反向迁移", tr)
		}
		if tr.From() == tr.To() {
			t.Errorf("迁移 %s 起止状态相同", tr)
		}
	}
	if tr, err := ParseTransition(" i2i1 "); err != nil || tr != I2I1 {
		t.Fatalf("解析迁移失败: %v %v", tr, err)
	}
	if _, err := ParseTransition("C1O1"); err == nil {
		t.Fatalf("C1O1 不应存在")
	}
}

func TestState(t *testing.T) {
	for _, s := range States() {
		p, err := ParseState(s.String())
		if err != nil || p != s {
			t.Errorf("状态 %s 解析失败: %v", s, err)
		}
	}
	if StateCount.String() != "State(5)" {
		t.Errorf("越界状态名称错误: %s", StateCount)
	}
}

func TestOccupancy(t *testing.T) {
	o := Occupancy{0.5, 0.25, 0.125, 0.0625, 0.0625}
	if o.Sum() != 1 {
		t.Errorf("总和错误: %v", o.Sum())
	}
	if o.Available() != 0.875 {
		t.Errorf("可用部分错误: %v", o.Available())
	}
	if o.String() != "[0.5, 0.25, 0.125, 0.0625, 0.0625]" {
		t.Errorf("格式错误: %s", o)
	}
	s := o.Slice()
	s[0] = 0
	if o.Get(C1) != 0.5 {
		t.Errorf("Slice 不应共享底层数据")
	}
}

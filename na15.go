package na15

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"na15/kinetics"
	"na15/types"
	"na15/utils"
)

// Debug 扫描调试接口
type Debug interface {
	Init(celsius float64)
	Update(v float64, occ types.Occupancy)
	Render(w io.Writer) error
}

// Channel 钠通道动力学模型
type Channel struct {
	*kinetics.Scheme
	Debug Debug // 可选，扫描时记录每个点
}

// NewChannel 使用默认 Na1.5 参数初始化
func NewChannel() *Channel {
	return &Channel{Scheme: kinetics.Default()}
}

// SteadyState 默认模型下的稳态占有率 (C1, C2, O1, I1, I2)
func SteadyState(v, celsius float64) (c1, c2, o1, i1, i2 float64, err error) {
	occ, err := kinetics.SteadyState(v, celsius)
	if err != nil {
		return 0, 0, 0, 0, 0, err
	}
	return occ[types.C1], occ[types.C2], occ[types.O1], occ[types.I1], occ[types.I2], nil
}

// Load 加载参数表文件
func (ch *Channel) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return ch.LoadReader(file)
}

// LoadReader 加载参数表
// 每行一个速率项: <迁移> <b> <v_half> <k>，同一迁移多行表示求和
// 以 . 开头为指令: .q10 <底数>，.tref <参考温度>
func (ch *Channel) LoadReader(r io.Reader) error {
	sch := &kinetics.Scheme{Q10Base: types.Q10Base, TempRef: types.TempRef}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := utils.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// 解析指令
		if fields[0][0] == '.' {
			value, err := fields.Float64(1)
			if err != nil {
				return fmt.Errorf("第 %d 行: %w", line, err)
			}
			switch strings.ToLower(fields[0]) {
			case ".q10":
				sch.Q10Base = value
			case ".tref":
				sch.TempRef = value
			default:
				return fmt.Errorf("第 %d 行: 未知指令 %s", line, fields[0])
			}
			continue
		}
		tr, err := types.ParseTransition(fields[0])
		if err != nil {
			return fmt.Errorf("第 %d 行: %w", line, err)
		}
		if len(fields) != 4 {
			return fmt.Errorf("第 %d 行: 速率项需要 3 个参数, 得到 %d", line, len(fields)-1)
		}
		var p [3]float64
		for i := range p {
			if p[i], err = fields.Float64(i + 1); err != nil {
				return fmt.Errorf("第 %d 行: %w", line, err)
			}
		}
		sch.Funcs[tr] = append(sch.Funcs[tr], kinetics.Sigmoid{B: p[0], VHalf: p[1], K: p[2]})
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := sch.Validate(); err != nil {
		return err
	}
	ch.Scheme = sch
	return nil
}

// Export 导出参数表文件
func (ch *Channel) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return ch.ExportWriter(file)
}

// ExportWriter 导出参数表
func (ch *Channel) ExportWriter(w io.Writer) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintln(writer, "# transition b v_half k")
	fmt.Fprintf(writer, ".q10 %s\n", utils.FromFloats(ch.Q10Base))
	fmt.Fprintf(writer, ".tref %s\n", utils.FromFloats(ch.TempRef))
	for _, tr := range types.Transitions() {
		for _, s := range ch.Funcs[tr] {
			fmt.Fprintf(writer, "%s %s\n", tr, utils.FromFloats(s.B, s.VHalf, s.K))
		}
	}
	return writer.Flush()
}

// Sweep 按保持电位扫描稳态，区间为 [start, end)
func (ch *Channel) Sweep(start, end, step, celsius float64, fn func(v float64, occ types.Occupancy)) error {
	if step == 0 || math.IsNaN(step) {
		return fmt.Errorf("扫描步长无效: %g", step)
	}
	n := int(math.Ceil((end - start) / step))
	if ch.Debug != nil {
		ch.Debug.Init(celsius)
	}
	for i := 0; i < n; i++ {
		v := start + float64(i)*step
		occ, err := ch.SteadyState(v, celsius)
		if err != nil {
			return err
		}
		if ch.Debug != nil {
			ch.Debug.Update(v, occ)
		}
		if fn != nil {
			fn(v, occ)
		}
	}
	return nil
}

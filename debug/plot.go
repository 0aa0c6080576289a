package debug

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"na15/types"
)

// Plot 静态图绘制
type Plot struct {
	Record
	Width, Height vg.Length // 为零时使用 8x6 英寸
}

func (p *Plot) size() (vg.Length, vg.Length) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = 8 * vg.Inch
	}
	if h <= 0 {
		h = 6 * vg.Inch
	}
	return w, h
}

func (p *Plot) xys(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i := range values {
		pts[i].X = p.Voltage[i]
		pts[i].Y = values[i]
	}
	return pts
}

// Build 生成曲线图
func (p *Plot) Build() (*plot.Plot, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("没有扫描数据")
	}
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Steady-state occupancy (%g °C)", p.Celsius)
	pl.X.Label.Text = "Holding potential (mV)"
	pl.Y.Label.Text = "Occupancy"
	pl.Legend.Top = true
	pl.Legend.Left = true
	for i, s := range types.States() {
		line, err := plotter.NewLine(p.xys(p.Series(s)))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		pl.Add(line)
		pl.Legend.Add(s.String(), line)
	}
	line, err := plotter.NewLine(p.xys(p.Available()))
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(int(types.StateCount))
	line.Width = vg.Points(1.5)
	line.Dashes = plotutil.Dashes(1)
	pl.Add(line)
	pl.Legend.Add("C1+C2+O1", line)
	return pl, nil
}

// Save 按扩展名保存 (png/svg/pdf/...)
func (p *Plot) Save(filename string) error {
	pl, err := p.Build()
	if err != nil {
		return err
	}
	w, h := p.size()
	return pl.Save(w, h, filename)
}

// Render 输出 PNG
func (p *Plot) Render(w io.Writer) error {
	pl, err := p.Build()
	if err != nil {
		return err
	}
	width, height := p.size()
	wt, err := pl.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

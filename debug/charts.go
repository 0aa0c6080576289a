package debug

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	st "na15/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// newLine 统一样式的折线图
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "mV",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i].Value = v
	}
	return items
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	lineS := newLine("稳态占有率", fmt.Sprintf("各状态稳态占有率随保持电位变化 (%g°C)", c.Celsius))
	lineA := newLine("可用性", fmt.Sprintf("未失活部分 C1+C2+O1 随保持电位变化 (%g°C)", c.Celsius))
	lineS.SetXAxis(c.Voltage)
	lineA.SetXAxis(c.Voltage)
	for _, s := range st.States() {
		lineS.AddSeries(s.String(), lineData(c.Series(s)))
	}
	lineA.AddSeries("C1+C2+O1", lineData(c.Available()))
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineS,
		lineA,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

package debug

import (
	"encoding/json"
	"io"
	"log"

	"na15/types"
)

// Record 记录扫描历史
type Record struct {
	Celsius   float64           // 温度
	Voltage   []float64         // 保持电位列
	Occupancy []types.Occupancy // 稳态占有率列
}

// Init 初始化
func (list *Record) Init(celsius float64) {
	list.Celsius = celsius
	list.Voltage = list.Voltage[:0]
	list.Occupancy = list.Occupancy[:0]
}

// Update 记录数据
func (list *Record) Update(v float64, occ types.Occupancy) {
	list.Voltage = append(list.Voltage, v)
	list.Occupancy = append(list.Occupancy, occ)
}

// Len 记录点数
func (list *Record) Len() int { return len(list.Voltage) }

// Series 指定状态的占有率曲线
func (list *Record) Series(s types.State) []float64 {
	out := make([]float64, len(list.Occupancy))
	for i, occ := range list.Occupancy {
		out[i] = occ[s]
	}
	return out
}

// Available 可用部分曲线
func (list *Record) Available() []float64 {
	out := make([]float64, len(list.Occupancy))
	for i, occ := range list.Occupancy {
		out[i] = occ.Available()
	}
	return out
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func (list *Record) Error(err error) { log.Println(err) }

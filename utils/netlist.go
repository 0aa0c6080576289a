package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NetList 参数表中一行按空白拆分后的字段
type NetList []string

// Fields 拆分一行，忽略行尾 # 注释
func Fields(line string) NetList {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return NetList(strings.Fields(line))
}

// FromFloats 将浮点数格式化为字段
func FromFloats(values ...float64) NetList {
	result := make(NetList, len(values))
	for i, v := range values {
		result[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return result
}

// Float64 严格解析第 i 个字段
func (value NetList) Float64(i int) (float64, error) {
	if i >= len(value) {
		return 0, fmt.Errorf("缺少第 %d 个字段", i)
	}
	v, err := strconv.ParseFloat(value[i], 64)
	if err != nil {
		return 0, fmt.Errorf("字段 %q 不是数字", value[i])
	}
	return v, nil
}

// ParseFloat64 解析64位浮点数，失败返回默认值
func (value NetList) ParseFloat64(i int, defaultValue float64) float64 {
	if v, err := value.Float64(i); err == nil {
		return v
	}
	return defaultValue
}

// ParseString 安全获取字符串
func (value NetList) ParseString(i int, defaultValue string) string {
	if i < len(value) {
		return value[i]
	}
	return defaultValue
}

// String 以空格连接
func (value NetList) String() string { return strings.Join(value, " ") }

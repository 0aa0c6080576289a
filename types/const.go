package types

// 模型默认常量定义
const (
	TempRef = 20.0 // Q10 参考温度 (°C)
	Q10Base = 3.0  // 每升高 10°C 速率倍数
)

// 默认参数常量定义
var (
	DefaultHolding = -120.0 // 默认保持电位 (mV)
	DefaultCelsius = 24.0   // 默认温度 (°C)
	Tolerance      = 1e-9   // 守恒容差
	PhysioMin      = -150.0 // 速率函数拟合的电压下限 (mV)
	PhysioMax      = 50.0   // 速率函数拟合的电压上限 (mV)
	SweepStart     = -90.0  // 扫描起点 (mV)
	SweepEnd       = 11.0   // 扫描终点，不含 (mV)
	SweepStep      = 2.0    // 扫描步长 (mV)
)

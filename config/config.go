package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"na15/types"
)

// Sweep 电压扫描区间 [Start, End)
type Sweep struct {
	Start float64 `mapstructure:"start"`
	End   float64 `mapstructure:"end"`
	Step  float64 `mapstructure:"step"`
}

// Output 输出路径，为空表示不输出
type Output struct {
	Dir    string `mapstructure:"dir"`
	Record string `mapstructure:"record"`
	Chart  string `mapstructure:"chart"`
	Plot   string `mapstructure:"plot"`
	JSON   string `mapstructure:"json"`
}

// Serve 网页服务
type Serve struct {
	Port int `mapstructure:"port"`
}

// Config 运行配置
type Config struct {
	Holding float64 `mapstructure:"holding"`
	Celsius float64 `mapstructure:"celsius"`
	Params  string  `mapstructure:"params"`
	Sweep   Sweep   `mapstructure:"sweep"`
	Output  Output  `mapstructure:"output"`
	Serve   Serve   `mapstructure:"serve"`
}

// EnvPrefix 环境变量前缀，如 NA15_CELSIUS、NA15_SWEEP_STEP
const EnvPrefix = "NA15"

// New 带默认值的 viper 实例
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("holding", types.DefaultHolding)
	v.SetDefault("celsius", types.DefaultCelsius)
	v.SetDefault("params", "")
	v.SetDefault("sweep.start", types.SweepStart)
	v.SetDefault("sweep.end", types.SweepEnd)
	v.SetDefault("sweep.step", types.SweepStep)
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.record", "")
	v.SetDefault("output.chart", "")
	v.SetDefault("output.plot", "")
	v.SetDefault("output.json", "")
	v.SetDefault("serve.port", 0)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 读取配置，path 为空时只使用默认值和环境变量
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置 %s: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查数值
func (cfg *Config) Validate() error {
	var errs []error
	for name, x := range map[string]float64{
		"holding":     cfg.Holding,
		"celsius":     cfg.Celsius,
		"sweep.start": cfg.Sweep.Start,
		"sweep.end":   cfg.Sweep.End,
		"sweep.step":  cfg.Sweep.Step,
	} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			errs = append(errs, fmt.Errorf("%s 不是有限值: %g", name, x))
		}
	}
	if cfg.Sweep.Step == 0 {
		errs = append(errs, errors.New("sweep.step 不能为零"))
	} else if (cfg.Sweep.End-cfg.Sweep.Start)*cfg.Sweep.Step < 0 {
		errs = append(errs, fmt.Errorf("sweep.step %g 与区间 [%g, %g) 方向相反", cfg.Sweep.Step, cfg.Sweep.Start, cfg.Sweep.End))
	}
	if cfg.Serve.Port < 0 || cfg.Serve.Port > 65535 {
		errs = append(errs, fmt.Errorf("serve.port 无效: %d", cfg.Serve.Port))
	}
	return errors.Join(errs...)
}

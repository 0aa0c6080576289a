// Package app provides the command-line interface for na15.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"

	"na15"
	"na15/config"
	"na15/types"
)

// env 一棵命令树共享的配置
type env struct {
	viper   *viper.Viper
	cfgFile string
}

// NewRootCmd 构建命令树，每次调用互不影响
func NewRootCmd() *cobra.Command {
	e := &env{viper: config.New()}

	rootCmd := &cobra.Command{
		Use:   "na15",
		Short: "na15 computes steady-state occupancies of the five-state Na1.5 channel scheme.",
		Long: `na15 computes the steady-state occupancy {C1, C2, O1, I1, I2} of the ` +
			`five-state sodium channel kinetic scheme at a holding potential and ` +
			`temperature, for use as initial conditions of a voltage-clamp simulation.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.cfgFile, "config", "", "configuration file (toml, yaml or json)")
	flags.Float64("celsius", types.DefaultCelsius, "temperature in celsius")
	flags.String("params", "", "rate parameter table replacing the built-in Na1.5 model")
	e.bind(flags.Lookup("celsius"), "celsius")
	e.bind(flags.Lookup("params"), "params")

	rootCmd.AddCommand(
		newSteadyCmd(e),
		newSweepCmd(e),
		newParamsCmd(e),
		newServeCmd(e),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// bind 命令行参数覆盖配置文件和环境变量
func (e *env) bind(flag *pflag.Flag, key string) {
	if err := e.viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// load 读取配置并建立通道模型
func (e *env) load() (*config.Config, *na15.Channel, error) {
	cfg, err := config.Load(e.viper, e.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	ch := na15.NewChannel()
	if cfg.Params != "" {
		if err := ch.Load(cfg.Params); err != nil {
			return nil, nil, fmt.Errorf("加载参数表 %s: %w", cfg.Params, err)
		}
	}
	return cfg, ch, nil
}

// outputPath 相对路径放到输出目录下
func outputPath(cfg *config.Config, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		return name, nil
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(cfg.Output.Dir, name), nil
}

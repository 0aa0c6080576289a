package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"na15"
	"na15/config"
	"na15/debug"
	"na15/recording"
	"na15/types"
)

func newSweepCmd(e *env) *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the holding potential over [start, end) and collect steady states.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ch, err := e.load()
			if err != nil {
				return err
			}
			list, err := runSweep(ch, cfg)
			if err != nil {
				return err
			}
			return writeSweep(cmd, cfg, list, table)
		},
	}

	flags := cmd.Flags()
	flags.Float64("start", types.SweepStart, "first holding potential in mV")
	flags.Float64("end", types.SweepEnd, "end of the sweep in mV (exclusive)")
	flags.Float64("step", types.SweepStep, "sweep step in mV")
	flags.String("record", "", "SQLite file receiving the sweep rows")
	flags.String("chart", "", "HTML chart output")
	flags.String("plot", "", "plot output, format by extension (png, svg, pdf)")
	flags.String("json", "", "JSON output, '-' for stdout")
	flags.StringVar(&table, "table", "sweep", "table name in the recording database")
	for flag, key := range map[string]string{
		"start":  "sweep.start",
		"end":    "sweep.end",
		"step":   "sweep.step",
		"record": "output.record",
		"chart":  "output.chart",
		"plot":   "output.plot",
		"json":   "output.json",
	} {
		e.bind(flags.Lookup(flag), key)
	}
	return cmd
}

// runSweep 按配置扫描并记录每个点
func runSweep(ch *na15.Channel, cfg *config.Config) (*debug.Record, error) {
	list := &debug.Record{}
	run := &na15.Channel{Scheme: ch.Scheme, Debug: list}
	s := cfg.Sweep
	if err := run.Sweep(s.Start, s.End, s.Step, cfg.Celsius, nil); err != nil {
		return nil, err
	}
	return list, nil
}

// writeSweep 输出各种结果
func writeSweep(cmd *cobra.Command, cfg *config.Config, list *debug.Record, table string) error {
	out := cmd.OutOrStdout()
	switch cfg.Output.JSON {
	case "":
		for i, v := range list.Voltage {
			fmt.Fprintf(out, "%g\t%v\n", v, list.Occupancy[i])
		}
	case "-":
		if err := list.Render(out); err != nil {
			return err
		}
	default:
		if err := writeFile(cfg, cfg.Output.JSON, list.Render); err != nil {
			return err
		}
	}

	if cfg.Output.Chart != "" {
		chart := &debug.Charts{Record: *list}
		if err := writeFile(cfg, cfg.Output.Chart, chart.Render); err != nil {
			return err
		}
	}

	if cfg.Output.Plot != "" {
		name, err := outputPath(cfg, cfg.Output.Plot)
		if err != nil {
			return err
		}
		p := &debug.Plot{Record: *list}
		if err := p.Save(name); err != nil {
			return err
		}
	}

	if cfg.Output.Record != "" {
		name, err := outputPath(cfg, cfg.Output.Record)
		if err != nil {
			return err
		}
		rec, err := recording.New(name)
		if err != nil {
			return err
		}
		defer rec.Close()
		runID, err := recording.RecordSweep(rec, table, "", list)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Sweep recorded as run %s in table %s\n", runID, table)
	}
	return nil
}

func writeFile(cfg *config.Config, name string, render func(w io.Writer) error) error {
	name, err := outputPath(cfg, name)
	if err != nil {
		return err
	}
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

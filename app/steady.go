package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"na15/types"
)

// steadyResult 稳态输出格式
type steadyResult struct {
	Voltage   float64            `json:"v"`
	Celsius   float64            `json:"celsius"`
	Occupancy map[string]float64 `json:"occupancy"`
	Available float64            `json:"available"`
}

func newSteadyResult(v, celsius float64, occ types.Occupancy) steadyResult {
	res := steadyResult{
		Voltage:   v,
		Celsius:   celsius,
		Occupancy: make(map[string]float64, types.StateCount),
		Available: occ.Available(),
	}
	for _, s := range types.States() {
		res.Occupancy[s.String()] = occ.Get(s)
	}
	return res
}

func newSteadyCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "steady",
		Short: "Print the steady-state occupancy at one holding potential.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ch, err := e.load()
			if err != nil {
				return err
			}
			occ, err := ch.SteadyState(cfg.Holding, cfg.Celsius)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(newSteadyResult(cfg.Holding, cfg.Celsius, occ))
			}
			_, err = fmt.Fprintln(out, "Initial values [C1, C2, O1, I1, I2]=  ", occ)
			return err
		},
	}
	cmd.Flags().Float64("holding", types.DefaultHolding, "holding potential in mV")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	e.bind(cmd.Flags().Lookup("holding"), "holding")
	return cmd
}

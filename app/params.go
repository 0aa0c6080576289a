package app

import (
	"github.com/spf13/cobra"
)

func newParamsCmd(e *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export-params",
		Short: "Write the rate parameter table in the loadable text format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, ch, err := e.load()
			if err != nil {
				return err
			}
			if output == "" {
				return ch.ExportWriter(cmd.OutOrStdout())
			}
			return ch.Export(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/puzzle-tools-mcp/internal/pipeline"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		lf     layoutFlags
		output string
		mutual bool
	)

	cmd := &cobra.Command{
		Use:   "graph <image>",
		Short: "Write the neighbor link graph of a puzzle as DOT or SVG",
		Long:  `graph solves the puzzle without saving it and writes the tile link graph. Without -o the DOT text goes to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				if _, err := graphFormat(output); err != nil {
					return err
				}
			}
			logger := loggerOf(cmd)
			runner := pipeline.New(a.cfg, nil, logger)
			dot, solved, err := runner.Graph(cmd.Context(), pipeline.Job{
				Input:      args[0],
				Layout:     lf.layout(cmd, a.cfg),
				MutualOnly: mutual,
			})
			if err != nil {
				return err
			}
			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}
			if err := writeGraph(cmd.Context(), output, dot); err != nil {
				return err
			}
			logger.Infof("Wrote %s (%d links, %d fragments)", output, solved.Report.Links, solved.Report.Fragments)
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&mutual, "mutual", false, "keep only links confirmed from both sides")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/puzzle-tools-mcp/internal/pipeline"
)

func newShuffleCmd(a *app) *cobra.Command {
	var (
		lf        layoutFlags
		output    string
		seed      uint64
		noiseTile int
	)

	cmd := &cobra.Command{
		Use:   "shuffle <image>",
		Short: "Scramble an image into a tile puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.New(a.cfg, nil, loggerOf(cmd))
			perm, err := runner.Shuffle(pipeline.ShuffleJob{
				Job: pipeline.Job{
					Input:  args[0],
					Output: output,
					Layout: lf.layout(cmd, a.cfg),
				},
				Seed:      seed,
				NoiseSlot: noiseTile,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatPerm(perm))
			return err
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (required)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&noiseTile, "noise-tile", -1, "replace this output slot with noise")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// formatPerm prints the permutation space-separated, slot order.
func formatPerm(perm []int) string {
	out := make([]byte, 0, len(perm)*3)
	for i, p := range perm {
		if i > 0 {
			out = append(out, ' ')
		}
		out = fmt.Appendf(out, "%d", p)
	}
	return string(out)
}

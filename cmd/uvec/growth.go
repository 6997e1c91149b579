package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/uvector"
)

func newGrowthCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "plot capacity against length while pushing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("--n must be positive, got %d", n)
			}
			h := a.cfg.NewHeap(a.logger)
			v := uvector.New(h,
				uvector.WithGrowthFactor[int](a.cfg.GrowthFactor),
				uvector.WithLogger[int](a.logger),
			)
			defer v.Release()

			caps, err := pushSeries(v, n)
			out := cmd.OutOrStdout()
			if len(caps) > 0 {
				graph := asciigraph.Plot(caps,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(fmt.Sprintf("capacity vs length (factor %.2f)", a.cfg.GrowthFactor)),
				)
				fmt.Fprintln(out, graph)
			}
			m := h.Metrics()
			fmt.Fprintf(out, "\npushed %d, capacity %d, reallocations %d\n", v.Len(), v.Cap(), m.Relocations)
			if err != nil {
				a.logger.Error("push failed", "len", v.Len(), "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 200, "number of elements to push")
	return cmd
}

// pushSeries pushes 0..n-1 and records the capacity after each push.
func pushSeries(v *uvector.Vector[int], n int) ([]float64, error) {
	caps := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			return caps, err
		}
		caps = append(caps, float64(v.Cap()))
	}
	return caps, nil
}

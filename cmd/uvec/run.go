package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/uvector"
	"github.com/pavanmanishd/uvector/heap"
	"github.com/pavanmanishd/uvector/internal/script"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	relocStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "replay an operation script against a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("loaded script", "name", s.Name, "ops", len(s.Ops))

			h := a.cfg.NewHeap(a.logger)
			label := "script"
			if s.Name != "" {
				label = "script:" + s.Name
			}
			v := uvector.New(h,
				uvector.WithGrowthFactor[int64](a.cfg.GrowthFactor),
				uvector.WithLogger[int64](a.logger),
				uvector.WithLabel[int64](label),
			)

			steps := script.Run(s, v)
			out := cmd.OutOrStdout()
			renderSteps(out, steps)

			failed := 0
			for _, st := range steps {
				if st.Err != nil {
					failed++
				}
			}
			m := h.Metrics()
			v.Release()
			renderSummary(out, m, failed, len(h.Leaks()))
			return nil
		},
	}
}

func renderSteps(w io.Writer, steps []script.Step) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-4s %-20s %5s %5s %7s  %s", "#", "op", "len", "cap", "handle", "values")))
	for i, st := range steps {
		line := fmt.Sprintf("%-4d %-20s %5d %5d %7d  %s", i+1, st.Op, st.Len, st.Cap, st.Handle, formatValues(st.Values))
		switch {
		case st.Err != nil:
			line = errStyle.Render(line + "  ! " + st.Err.Error())
		case st.Relocated:
			line = relocStyle.Render(line + "  (relocated)")
		}
		fmt.Fprintln(w, line)
	}
}

func renderSummary(w io.Writer, m heap.HeapMetrics, failed, leaks int) {
	lines := []string{
		fmt.Sprintf("allocs %d  frees %d  failed %d  relocations %d", m.Allocs, m.Frees, m.Failed, m.Relocations),
		fmt.Sprintf("heap %d/%d bytes in use (%.1f%%), %d chunk(s)", m.SizeInUse, m.Capacity, m.Utilization*100, m.NumChunks),
		fmt.Sprintf("failed ops %d  leaked blocks after release %d", failed, leaks),
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func formatValues(values []int64) string {
	const maxShown = 12
	parts := make([]string, 0, min(len(values), maxShown)+1)
	for i, x := range values {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("… +%d", len(values)-maxShown))
			break
		}
		parts = append(parts, fmt.Sprint(x))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

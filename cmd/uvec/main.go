// Command uvec exercises uvector against a tracked heap: it replays
// operation scripts and plots how capacity follows length.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pavanmanishd/uvector/internal/config"
)

var version = "dev"

// app carries state shared by subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *log.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "uvec",
		Short:         "dynamic array lab on a tracked heap",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = log.NewWithOptions(stderr, log.Options{
				Prefix: "uvec",
				Level:  cfg.Level(),
			})
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	flags.Int("chunk-size", 0, "heap chunk size in bytes")
	flags.Int("limit", 0, "heap capacity limit in bytes (0 = unbounded)")
	flags.Float64("growth", 0, "capacity growth factor")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	bind := map[string]string{
		"heap.chunk_size": "chunk-size",
		"heap.limit":      "limit",
		"growth_factor":   "growth",
		"log_level":       "log-level",
	}
	for key, name := range bind {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(
		newRunCmd(a),
		newGrowthCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "print version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "uvec", version)
			},
		},
	)
	return rootCmd
}

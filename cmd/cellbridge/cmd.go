package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/cellbridge/internal/bridge"
	"github.com/dshills/cellbridge/internal/config"
	"github.com/dshills/cellbridge/internal/config/watcher"
	"github.com/dshills/cellbridge/internal/demo"
	"github.com/dshills/cellbridge/internal/host"
)

type options struct {
	configPath string
	frames     int
	fps        int
	seed       uint64
	watch      bool
	headless   bool
}

// demoState is what both demo variants provide.
type demoState interface {
	host.GameState
	demo.Reloadable
	Err() error
	Close()
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "cellbridge",
		Short:         "cellbridge draws a text UI onto a cell-grid console",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.toml, .yaml or .json)")

	demoFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVarP(&opts.frames, "frames", "n", 0, "stop after this many frames (0 runs until Esc)")
		cmd.Flags().IntVar(&opts.fps, "fps", 0, "frames per second (overrides host.fps)")
		cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for the sample data (0 uses the clock)")
		cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload colours when the config file changes")
		cmd.Flags().BoolVar(&opts.headless, "headless", false, "render without a screen and print the console")
	}

	direct := &cobra.Command{
		Use:   "direct",
		Short: "Run the demo drawing straight onto the host context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts, func(colours bridge.ColourConverter, seed uint64) (demoState, error) {
				return demo.NewDirectState(colours, seed), nil
			})
		},
	}
	demoFlags(direct)

	batch := &cobra.Command{
		Use:   "batch",
		Short: "Run the demo through a pooled draw batch and the render queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts, func(colours bridge.ColourConverter, seed uint64) (demoState, error) {
				return demo.NewBatchState(colours, seed, 0)
			})
		},
	}
	demoFlags(batch)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print the merged configuration as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				out, err := cfg.Dump()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Check the configuration and colour script",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig(opts)
				if err != nil {
					return err
				}
				_, closeColours, err := cfg.Converter()
				if err != nil {
					return err
				}
				closeColours()
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			},
		},
	)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cellbridge %s\nCommit: %s\nBuilt: %s\n", version, commit, date)
		},
	}

	root.AddCommand(direct, batch, configCmd, versionCmd)
	return root
}

// loadConfig loads and validates the config, applying flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.fps > 0 {
		if err := cfg.Set("host.fps", opts.fps); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runDemo(out io.Writer, opts options, newState func(bridge.ColourConverter, uint64) (demoState, error)) error {
	if opts.frames < 0 {
		return errors.New("--frames must not be negative")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	colours, closeColours, err := cfg.Converter()
	if err != nil {
		return err
	}
	defer closeColours()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state, err := newState(colours, seed)
	if err != nil {
		return err
	}
	defer state.Close()

	if opts.watch && cfg.Path() != "" {
		w, err := watcher.New()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Close()
		if err := demo.WatchColours(cfg, w, state, demo.NewLogger()); err != nil {
			return fmt.Errorf("watching %s: %w", cfg.Path(), err)
		}
	}

	hc := cfg.Host()
	if opts.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadless(out, hc, state, opts.frames)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	err = host.Run(screen, state, host.Options{
		FPS:        hc.FPS,
		MaxFrames:  opts.frames,
		FontWidth:  hc.FontWidth,
		FontHeight: hc.FontHeight,
	})
	if err != nil {
		return err
	}
	return state.Err()
}

// runHeadless ticks state on an in-memory console and prints the result.
func runHeadless(out io.Writer, hc config.HostConfig, state demoState, frames int) error {
	if frames == 0 {
		frames = 1
	}
	t := host.NewTerm(host.NewConsole(hc.Columns, hc.Rows, hc.FontWidth, hc.FontHeight), nil)
	host.RunHeadless(t, state, frames)
	if err := state.Err(); err != nil {
		return err
	}
	for _, line := range t.Console().Text() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

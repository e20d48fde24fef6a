package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/tint/engine/core"
	glbackend "github.com/hubastard/tint/engine/gfx/gl"
	"github.com/hubastard/tint/engine/platform"
	"github.com/hubastard/tint/engine/profiler"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

type options struct {
	config  string
	vertex  string
	debug   bool
	watch   bool
	profile string
}

func newRootCmd(run func(cfg sandboxConfig, opts options, log *slog.Logger) error) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "sandbox",
		Short:        "Draw solid-color swatches through the shader program cache",
		Long:         "Draws one swatch per configured color and one per senior shader.\nEdits to the vertex shader are picked up live; R restores the default vertex stage, Space reloads it.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.debug)
			slog.SetDefault(log)

			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			if opts.vertex != "" {
				cfg.VertexShader = opts.vertex
			}
			if err := run(cfg, opts, log); err != nil {
				zerr.Log(cmd.Context(), log, err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "assets/sandbox.yaml", "sandbox config file (empty for built-in defaults)")
	cmd.Flags().StringVar(&opts.vertex, "vertex", "", "vertex shader overriding the config")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every compile and link")
	cmd.Flags().BoolVar(&opts.watch, "watch", true, "reload the vertex shader when its file changes")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "write a speedscope profile of shader work to this file on exit")
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runSandbox(cfg sandboxConfig, opts options, log *slog.Logger) error {
	app := &App{cfg: cfg, log: log, watch: opts.watch, profilePath: opts.profile}
	if opts.profile != "" {
		app.prof = profiler.New(1 << 16)
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	return core.Run(app, cfg.Window, newWindow, newRenderer)
}

func main() {
	if err := newRootCmd(runSandbox).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

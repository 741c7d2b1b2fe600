package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glsb/config"
	"glsb/logging"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()
}

var args struct {
	cfgFile  string
	debug    bool
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "glsb",
		Short: "OpenGL sandbox",
		Long: `glsb opens a window and draws a textured, lit cube on a floor.

Move the camera with W/S (forward/back), A/D (sideways) and Q/Z (up/down),
zoom with the mouse wheel and quit with Escape.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			return runGL(cfg, log)
		},
	}

	root.PersistentFlags().StringVar(&args.cfgFile, "config", "", "config file (default is $HOME/.glsb/config.yaml)")
	root.PersistentFlags().BoolVar(&args.debug, "debug", false, "Enable OpenGL debug contexts and Vulkan validation layers")
	root.PersistentFlags().StringVar(&args.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:          "vk",
		Short:        "Vulkan sandbox",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			return runVK(cfg, log)
		},
	})

	return root
}

// setup loads the configuration, applies command line overrides and
// installs the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(args.cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if args.debug {
		cfg.GL.Debug = true
		cfg.Vulkan.Validation = true
	}
	if args.logLevel != "" {
		cfg.Logging.Level = args.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, fmt.Errorf("--log-level: %w", err)
		}
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	logging.Install(log)
	return cfg, log, nil
}

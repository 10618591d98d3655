package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/device-management-toolkit/redfish-sync/config"
	"github.com/device-management-toolkit/redfish-sync/internal/app"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	newAppFunc           = func(ctx context.Context, cfg *config.Config, log logger.Interface) (runner, error) {
		return app.New(ctx, cfg, log)
	}
)

type runner interface {
	Run(ctx context.Context) error
	Pass(ctx context.Context) (*app.Report, error)
	DispatchOnly(ctx context.Context) (*app.Report, error)
	Import(ctx context.Context, items []entity.ConfigItem) error
	Close()
}

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "redfish-sync",
		Short:         "Reconciles local platform configuration with a BMC Redfish service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Sync every interval until interrupted",
			RunE: withApp(func(ctx context.Context, a runner) error {
				return a.Run(ctx)
			}),
		},
		&cobra.Command{
			Use:   "once",
			Short: "Run a single sync pass followed by task dispatch",
			RunE: withApp(func(ctx context.Context, a runner) error {
				_, err := a.Pass(ctx)

				return err
			}),
		},
		&cobra.Command{
			Use:   "dispatch",
			Short: "Poll the task collection once",
			RunE: withApp(func(ctx context.Context, a runner) error {
				_, err := a.DispatchOnly(ctx)

				return err
			}),
		},
		&cobra.Command{
			Use:   "import <seed.yml>",
			Short: "Store seed values in the local configuration store",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				items, err := app.LoadSeed(f)
				if err != nil {
					return err
				}

				return withApp(func(ctx context.Context, a runner) error {
					return a.Import(ctx, items)
				})(cmd, args)
			},
		},
	)

	return root
}

// withApp loads the configuration, builds the application and cancels its
// context on SIGINT or SIGTERM.
func withApp(fn func(ctx context.Context, a runner) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := initializeConfigFunc(configPath)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		cfg.Version = app.Version

		log := logger.New(cfg.Level)
		logger.SetupStdLog(log)
		logger.SetupGin(log)
		log.Info("app - version: %s", cfg.Version)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newAppFunc(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(ctx, a)
	}
}

package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"resume-builder/internal/app"
	"resume-builder/internal/config"
	"resume-builder/internal/logging"
)

var (
	configPath string
	appCtx     *app.App
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// run executes one command line and closes the store afterwards, also when
// the command failed.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
		appCtx = nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "resume",
		Short:        "Edit, render and export a resume",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logging.NewWriter(cmd.ErrOrStderr(), cfg.Log)
			appCtx, err = app.New(cmd.Context(), cfg, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $RESUME_CONFIG)")

	root.AddCommand(
		showCmd(), importCmd(), resetCmd(), checkCmd(),
		addCmd(), setCmd(), removeCmd(), personalCmd(), pictureCmd(),
		skillCmd(), levelCmd(),
		templatesCmd(), templateCmd(), renderCmd(), exportCmd(),
	)
	return root
}

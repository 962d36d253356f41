package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/freshcart/gridkit/internal/devserver"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var (
		grid gridFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dev server with solve, preview and render-tree endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}
			res, err := loadConfig(root)
			if err != nil {
				return err
			}
			if res.Grid, err = grid.apply(cmd, res.Grid); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := devserver.New(devserver.Options{Addr: addr, Config: res.Config, Logger: log})
			if _, err := srv.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	grid.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", devserver.DefaultAddr, "Listen address")

	return cmd
}

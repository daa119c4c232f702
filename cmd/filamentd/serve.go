package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/filament-network/hub/x/core/client/cli"
	"github.com/filament-network/hub/x/core/client/rest"
	"github.com/filament-network/hub/x/core/keeper"
)

const (
	flagListen = "listen"

	shutdownTimeout = 5 * time.Second
)

// ServeCmd replays the given calls and serves the resulting state read only
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <txs.json>",
		Short: "Replay signed calls and serve the resulting state over REST",
		Long: `Replay the signed calls of the given file on top of the genesis document and
serve the read only query routes on the committed state until interrupted.

Example:
	filamentd serve txs.json --genesis genesis.json --listen localhost:1317
	`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			c, out, err := replayFile(cmd, logger, args[0])
			if err != nil {
				return err
			}
			listen, err := cmd.Flags().GetString(flagListen)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              listen,
				Handler:           newRouter(c),
				ReadHeaderTimeout: 10 * time.Second,
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			logger.Info("serving", "addr", listen, "height", out.Height, "app_hash", out.AppHash)

			select {
			case err := <-errCh:
				return errors.Wrap(err, "listen")
			case <-ctx.Done():
			}
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().AddFlagSet(cli.GenesisFlagSet())
	cmd.Flags().String(flagListen, "localhost:1317", "Address the REST server listens on")
	return cmd
}

func newRouter(c *chain) *mux.Router {
	r := mux.NewRouter()
	rest.RegisterRoutes(r, keeper.NewQuerier(c.keeper), c.queryContext)
	return r
}
